package we

type CommandName string

func (name CommandName) String() string {
	return string(name)
}

type Command any

func CommandNameOf(command Command) CommandName {
	return CommandName(NameOf(command))
}
