package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chainwatch/chainwatch/chainmodel"
	"github.com/chainwatch/chainwatch/sonic"
)

// loadNetworks reads one Network object per *.json file in dir (§6).
func loadNetworks(dir string) ([]chainmodel.Network, error) {
	var out []chainmodel.Network
	err := forEachJSONFile(dir, func(path string, data []byte) error {
		var n chainmodel.Network
		if err := sonic.Config.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := n.Validate(); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		out = append(out, n)
		return nil
	})
	return out, err
}

// loadMonitors reads one Monitor object per *.json file in dir (§6),
// validated against the already-loaded network/trigger repositories.
func loadMonitors(dir string, repo chainmodel.StaticRepository) ([]chainmodel.Monitor, error) {
	var out []chainmodel.Monitor
	err := forEachJSONFile(dir, func(path string, data []byte) error {
		var m chainmodel.Monitor
		if err := sonic.Config.Unmarshal(data, &m); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := m.Validate(repo, repo); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		out = append(out, m)
		return nil
	})
	return out, err
}

// loadTriggers reads a map name -> Trigger from every *.json file in dir
// (§6) and merges them into one map.
func loadTriggers(dir string) (map[string]chainmodel.Trigger, error) {
	out := make(map[string]chainmodel.Trigger)
	err := forEachJSONFile(dir, func(path string, data []byte) error {
		var m map[string]chainmodel.Trigger
		if err := sonic.Config.Unmarshal(data, &m); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for name, t := range m {
			t.Name = name
			out[name] = t
		}
		return nil
	})
	return out, err
}

func forEachJSONFile(dir string, fn func(path string, data []byte) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := fn(path, data); err != nil {
			return err
		}
	}
	return nil
}
