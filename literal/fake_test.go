package literal

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
)

var operationPattern = regexp.MustCompile(`(?:query|mutation)\s+(\w+)`)

// recordedCall is a request observed by fakeAPI.
type recordedCall struct {
	Operation     string
	Authorization string
	Variables     map[string]any
}

// fakeAPI is a scripted Literal GraphQL endpoint keyed by operation name.
type fakeAPI struct {
	mu       sync.Mutex
	calls    []recordedCall
	upload   []byte
	handlers map[string]http.HandlerFunc
}

func newFakeAPI() (*fakeAPI, *httptest.Server) {
	api := &fakeAPI{handlers: make(map[string]http.HandlerFunc)}
	return api, httptest.NewServer(api)
}

func (f *fakeAPI) on(operation string, status int, body string) {
	f.handlers[operation] = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func (f *fakeAPI) operations() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	ops := make([]string, len(f.calls))
	for i, c := range f.calls {
		ops[i] = c.Operation
	}
	return ops
}

func (f *fakeAPI) call(operation string) (recordedCall, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, c := range f.calls {
		if c.Operation == operation {
			return c, true
		}
	}
	return recordedCall{}, false
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req graphQLRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_ = json.Unmarshal([]byte(r.FormValue("operations")), &req)

		if file, _, err := r.FormFile("0"); err == nil {
			data, _ := io.ReadAll(file)
			f.mu.Lock()
			f.upload = data
			f.mu.Unlock()
		}
	} else {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	var operation string
	if m := operationPattern.FindStringSubmatch(req.Query); m != nil {
		operation = m[1]
	}

	f.mu.Lock()
	f.calls = append(f.calls, recordedCall{
		Operation:     operation,
		Authorization: r.Header.Get("Authorization"),
		Variables:     req.Variables,
	})
	handler, ok := f.handlers[operation]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"errors":[{"message":"unexpected operation `+operation+`"}]}`)
		return
	}

	handler(w, r)
}
