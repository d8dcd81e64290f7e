package http

import (
	"encoding/json"
	"net/http"
)

// htmx event names the page listens for. Mutation handlers emit these via
// HX-Trigger so the affected regions refetch their partials.
const (
	eventDashboardRefresh = "dashboard:refresh"
	eventAccountsRefresh  = "accounts:refresh"
	eventNotify           = "app:notify"
)

// triggerBuilder accumulates HX-Trigger events for one response.
type triggerBuilder struct {
	events map[string]any
}

func newTriggers() *triggerBuilder {
	return &triggerBuilder{events: map[string]any{}}
}

func (b *triggerBuilder) Dashboard() *triggerBuilder {
	b.events[eventDashboardRefresh] = ""
	return b
}

func (b *triggerBuilder) Accounts() *triggerBuilder {
	b.events[eventAccountsRefresh] = ""
	return b
}

// Notify attaches a toast payload. Level is "success" or "error".
func (b *triggerBuilder) Notify(level, message string) *triggerBuilder {
	b.events[eventNotify] = map[string]string{"level": level, "message": message}
	return b
}

func (b *triggerBuilder) Apply(w http.ResponseWriter) {
	if len(b.events) == 0 {
		return
	}
	data, err := json.Marshal(b.events)
	if err != nil {
		return
	}
	w.Header().Set("HX-Trigger", string(data))
}
