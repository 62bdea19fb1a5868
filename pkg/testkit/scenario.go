// Package testkit runs JSON-scenario-driven tests against the API handler.
//
// Each scenario is a JSON file describing one request and its expected
// outcome:
//   - the request to fire (method, URL, body file, headers)
//   - the expected HTTP status code
//   - optionally an expected response body file for a JSON diff
//
// Scenario files live next to the *_test.go files:
//
//	testdata/
//	  create_client.json        ← scenario
//	  create_client_req.json    ← request body
//	  create_client_res.json    ← expected response body
//
// Example _test.go:
//
//	func TestAPI(t *testing.T) {
//	    handler := server.BuildHandler(server.Wire(db))
//	    testkit.RunDir(t, handler, "testdata")
//	}
package testkit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Scenario describes a single API test case loaded from a JSON file.
type Scenario struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	RequestMethod   string            `json:"requestMethod"`   // GET, POST, PATCH, DELETE
	RequestURL      string            `json:"requestUrl"`      // e.g. /api/v1/clients
	RequestFileName string            `json:"requestFileName"` // JSON body file, relative to the scenario dir
	Headers         map[string]string `json:"headers"`

	ResponseFileName string `json:"responseFileName"` // expected response JSON file
	ExpectedCode     int    `json:"expectedCode"`

	dir string // directory of the scenario file, set at load time
}

// LoadScenario reads and validates a scenario from a JSON file.
func LoadScenario(path string) (*Scenario, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("testkit: resolve path %q: %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("testkit: read %q: %w", abs, err)
	}

	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("testkit: parse %q: %w", abs, err)
	}

	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("testkit: invalid scenario %q: %w", abs, err)
	}

	s.dir = filepath.Dir(abs)
	return &s, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.RequestURL == "" {
		return fmt.Errorf("requestUrl is required")
	}
	if s.ExpectedCode == 0 {
		return fmt.Errorf("expectedCode is required")
	}
	if s.RequestMethod == "" {
		s.RequestMethod = "GET"
	}
	return nil
}

// RequestBodyPath resolves the request body file relative to the scenario
// file's directory. Empty when the scenario has no body.
func (s *Scenario) RequestBodyPath() string {
	if s.RequestFileName == "" {
		return ""
	}
	if filepath.IsAbs(s.RequestFileName) {
		return s.RequestFileName
	}
	return filepath.Join(s.dir, s.RequestFileName)
}

// ResponseBodyPath resolves the expected response file the same way.
func (s *Scenario) ResponseBodyPath() string {
	if s.ResponseFileName == "" {
		return ""
	}
	if filepath.IsAbs(s.ResponseFileName) {
		return s.ResponseFileName
	}
	return filepath.Join(s.dir, s.ResponseFileName)
}
