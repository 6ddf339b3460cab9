package wehttp

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/goccy/go-json"

	"github.com/weegigs/wee-starter/counter"
	"github.com/weegigs/wee-starter/we"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: message})
}

func writeSnapshot(w http.ResponseWriter, r *http.Request, snapshot counter.Snapshot) {
	body, err := json.MarshalContext(r.Context(), snapshot)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to encode counter")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (service *httpService) getCounter() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSnapshot(w, r, service.counters.Snapshot())
	}
}

func (service *httpService) executeCommand(command we.Command) http.HandlerFunc {
	name := we.CommandNameOf(command)

	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := service.counters.Execute(command)
		if err != nil {
			service.log.Info().Err(err).Str("command", name.String()).Msg("failed to execute command")
			writeError(w, r, http.StatusInternalServerError, "failed to execute command")
			return
		}

		service.log.Debug().Str("command", name.String()).Int("count", snapshot.Count).Msg("command executed")
		writeSnapshot(w, r, snapshot)
	}
}

// latest keeps only the newest pending snapshot so a slow client never blocks the store.
func latest(updates chan counter.Snapshot, snapshot counter.Snapshot) {
	for {
		select {
		case updates <- snapshot:
			return
		default:
		}

		select {
		case <-updates:
		default:
		}
	}
}

func writeEvent(w http.ResponseWriter, flusher http.Flusher, snapshot counter.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "event: counter\nid: %s\ndata: %s\n\n", snapshot.Revision, data); err != nil {
		return err
	}

	flusher.Flush()
	return nil
}

// streamCounter sends the current snapshot, then one server-sent event per change
// until the client goes away.
func (service *httpService) streamCounter() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			writeError(w, r, http.StatusInternalServerError, "streaming unsupported")
			return
		}

		updates := make(chan counter.Snapshot, 1)
		unsubscribe := service.counters.Watch(func(snapshot counter.Snapshot) {
			latest(updates, snapshot)
		})
		defer unsubscribe()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		last := service.counters.Snapshot()
		if err := writeEvent(w, flusher, last); err != nil {
			return
		}

		for {
			select {
			case <-r.Context().Done():
				return
			case snapshot := <-updates:
				// a change committed before the first write can arrive late
				if snapshot.Revision <= last.Revision {
					continue
				}
				last = snapshot

				if err := writeEvent(w, flusher, snapshot); err != nil {
					service.log.Debug().Err(err).Msg("counter stream closed")
					return
				}
			}
		}
	}
}
