package we

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type TestEvent struct{}

type TestNamedEvent struct{}

func (TestNamedEvent) TypeName() string {
	return "test:named"
}

type TestTypedEvent struct{}

func (TestTypedEvent) EventType() EventType {
	return "test:typed"
}

func resolvesExplicitName(t *testing.T) {
	assert.Equal(t, CommandName("test:named"), CommandNameOf(TestNamedEvent{}))
}

func resolvesImplicitName(t *testing.T) {
	assert.Equal(t, CommandName("we:test-event"), CommandNameOf(TestEvent{}))
}

func resolvesPointerName(t *testing.T) {
	assert.Equal(t, "we:test-event", NameOf(&TestEvent{}))
}

func prefersEventType(t *testing.T) {
	assert.Equal(t, EventType("test:typed"), EventTypeOf(TestTypedEvent{}))
	assert.Equal(t, EventType("we:test-event"), EventTypeOf(TestEvent{}))
}

func TestNames(t *testing.T) {
	t.Run("resolves explicit name", resolvesExplicitName)
	t.Run("resolves implicit name", resolvesImplicitName)
	t.Run("resolves pointer name", resolvesPointerName)
	t.Run("prefers event type", prefersEventType)
}
