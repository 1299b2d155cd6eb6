package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/asakaida/banken/internal/entities"
)

// ProblemDetail is an RFC 7807 problem details payload.
type ProblemDetail struct {
	Type   string `json:"type,omitempty"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ProblemDetail{
		Title:  title,
		Status: status,
		Detail: detail,
	})
}

func decodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}

type rolesPayload struct {
	RoleIDs []string `json:"role_ids"`
}

type permissionsPayload struct {
	PermissionIDs []string `json:"permission_ids"`
}

type rolesResponse struct {
	Roles []string `json:"roles"`
}

type usersResponse struct {
	Users []string `json:"users"`
}

type servicesResponse struct {
	Services []string `json:"services"`
}

type permissionsResponse struct {
	Permissions []string `json:"permissions"`
}

type hasResponse struct {
	Has bool `json:"has"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type bulkInsertResponse struct {
	Inserted       int `json:"inserted"`
	AlreadyPresent int `json:"already_present"`
}

type bulkDeleteResponse struct {
	Removed int `json:"removed"`
}

type replaceResponse struct {
	Added     []string `json:"added"`
	Removed   []string `json:"removed"`
	Unchanged []string `json:"unchanged"`
}

// toStrings keeps JSON arrays non-null even when the store returns nil.
func toStrings[T entities.ID](ids []T) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, string(id))
	}
	return out
}

func toIDs[T entities.ID](values []string) []T {
	out := make([]T, 0, len(values))
	for _, v := range values {
		out = append(out, T(v))
	}
	return out
}

// emptyIndex returns the index of the first empty ID, or -1.
func emptyIndex(ids []string) int {
	for i, id := range ids {
		if id == "" {
			return i
		}
	}
	return -1
}
