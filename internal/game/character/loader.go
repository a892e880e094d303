package character

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDraftFile reads a single draft from path. Files ending in .json are
// decoded as JSON; .yaml and .yml as YAML.
//
// Precondition: path must name a readable file with a supported extension.
// Postcondition: Returns the parsed draft or a non-nil error.
func LoadDraftFile(path string) (*Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	d, err := ParseDraft(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("parsing draft file %s: %w", path, err)
	}
	return d, nil
}

// ParseDraft decodes a draft from data. ext selects the format (".json",
// ".yaml" or ".yml"). Keys that are not draft fields are an error.
func ParseDraft(data []byte, ext string) (*Draft, error) {
	var d Draft
	var err error
	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&d)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&d)
	default:
		return nil, fmt.Errorf("unsupported draft format %q", ext)
	}
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty draft document")
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// LoadDraftDir reads every .yaml, .yml and .json file in dir as a draft,
// in file name order.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed drafts (may be empty slice) or a non-nil error.
func LoadDraftDir(dir string) ([]*Draft, error) {
	files, err := draftFiles(dir)
	if err != nil {
		return nil, err
	}
	drafts := make([]*Draft, 0, len(files))
	for _, path := range files {
		d, err := LoadDraftFile(path)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, d)
	}
	return drafts, nil
}

// LoadDrafts resolves each path as either a draft file or a directory of
// draft files and returns all drafts in argument order.
func LoadDrafts(paths ...string) ([]*Draft, error) {
	var drafts []*Draft
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if info.IsDir() {
			ds, err := LoadDraftDir(p)
			if err != nil {
				return nil, err
			}
			drafts = append(drafts, ds...)
			continue
		}
		d, err := LoadDraftFile(p)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, d)
	}
	return drafts, nil
}

func draftFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml", ".json":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
