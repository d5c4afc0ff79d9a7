// Package reqfile loads a request descriptor from a YAML or JSON file.
package reqfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Request describes one API call to execute.
type Request struct {
	Method    string            `json:"method" yaml:"method"`
	URI       string            `json:"uri" yaml:"uri"`
	Fragments []string          `json:"fragments" yaml:"fragments"`
	Data      map[string]any    `json:"data" yaml:"data"`
	Statuses  []int             `json:"statuses" yaml:"statuses"`
	Headers   map[string]string `json:"headers" yaml:"headers"`
}

// Load reads and validates a request descriptor file.
func Load(path string) (Request, error) {
	if strings.TrimSpace(path) == "" {
		return Request{}, errors.New("request file path is empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return Request{}, fmt.Errorf("open request file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return Request{}, fmt.Errorf("read request file: %w", err)
	}

	req, err := parseRequest(raw, filepath.Ext(path))
	if err != nil {
		return Request{}, err
	}

	if err := validateRequest(req); err != nil {
		return Request{}, err
	}
	return req, nil
}

func parseRequest(data []byte, ext string) (Request, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))

	decoders := []struct {
		name string
		ext  string
		fn   unmarshalFn
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		var req Request
		if err := d.fn(data, &req); err == nil {
			return req, nil
		}
	}

	return Request{}, errors.New("request file format not recognized (expected YAML or JSON)")
}

type unmarshalFn func([]byte, any) error

func validateRequest(req Request) error {
	if strings.TrimSpace(req.Method) == "" {
		return errors.New("method is required")
	}
	if req.URI == "" && len(req.Fragments) == 0 {
		return errors.New("one of uri or fragments is required")
	}
	if req.URI != "" && len(req.Fragments) > 0 {
		return errors.New("uri and fragments are mutually exclusive")
	}
	return nil
}
