package browserlist

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config file names recognized during discovery, in lookup order
// within one directory.
const (
	rcConfigFile    = ".browserslistrc"
	plainConfigFile = "browserslist"
	packageJSONFile = "package.json"
)

// configQueries discovers the project-local query list for path.
// explicitFile, when non-empty, bypasses discovery entirely
// (BROWSERSLIST_CONFIG). The env argument selects a named section;
// missing sections fall back to "defaults". A nil result with nil
// error means no config exists anywhere up the tree.
func configQueries(path, explicitFile, env string) ([]string, error) {
	if explicitFile != "" {
		sections, err := loadConfigFile(explicitFile)
		if err != nil {
			return nil, err
		}
		return pickSection(sections, env), nil
	}

	if path == "" {
		path = "."
	}

	dir, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	for {
		sections, err := dirConfig(dir)
		if err != nil {
			return nil, err
		}
		if sections != nil {
			return pickSection(sections, env), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// dirConfig loads the config from a single directory, returning nil
// when the directory carries none. Two config sources in the same
// directory is ambiguous and rejected, matching the reference
// ecosystem behavior.
func dirConfig(dir string) (map[string][]string, error) {
	var (
		sections map[string][]string
		source   string
	)

	for _, name := range []string{rcConfigFile, plainConfigFile, packageJSONFile} {
		file := filepath.Join(dir, name)
		if _, err := os.Stat(file); err != nil {
			continue
		}

		loaded, err := loadConfigFile(file)
		if err != nil {
			return nil, err
		}
		if loaded == nil {
			continue // package.json without a browserslist key
		}

		if sections != nil {
			return nil, fmt.Errorf("%w: %s and %s", ErrDuplicateConfig, source, file)
		}
		sections = loaded
		source = file
	}

	return sections, nil
}

func loadConfigFile(file string) (map[string][]string, error) {
	if filepath.Base(file) == packageJSONFile {
		return parsePackageJSON(file)
	}
	return parseRCFile(file)
}

// parseRCFile reads the line-oriented config format: one query per
// line, "#" comments, optional "[env]" section headers. Lines before
// the first header belong to the "defaults" section.
func parseRCFile(file string) (map[string][]string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sections := map[string][]string{}
	current := "defaults"

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			current = strings.TrimSpace(line[1 : len(line)-1])
			continue
		}
		sections[current] = append(sections[current], line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return sections, nil
}

// parsePackageJSON extracts the "browserslist" key, which may be a
// single query string, an array of queries, or an object keyed by
// environment name. Returns nil sections when the key is absent.
func parsePackageJSON(file string) (map[string][]string, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var pkg struct {
		Browserslist json.RawMessage `json:"browserslist"`
	}
	if err := json.Unmarshal(raw, &pkg); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	if len(pkg.Browserslist) == 0 {
		return nil, nil
	}

	var single string
	if err := json.Unmarshal(pkg.Browserslist, &single); err == nil {
		return map[string][]string{"defaults": {single}}, nil
	}

	var list []string
	if err := json.Unmarshal(pkg.Browserslist, &list); err == nil {
		return map[string][]string{"defaults": list}, nil
	}

	var byEnv map[string]json.RawMessage
	if err := json.Unmarshal(pkg.Browserslist, &byEnv); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	sections := make(map[string][]string, len(byEnv))
	for env, value := range byEnv {
		var envSingle string
		if err := json.Unmarshal(value, &envSingle); err == nil {
			sections[env] = []string{envSingle}
			continue
		}
		var envList []string
		if err := json.Unmarshal(value, &envList); err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		sections[env] = envList
	}
	return sections, nil
}

func pickSection(sections map[string][]string, env string) []string {
	if sections == nil {
		return nil
	}
	if queries, ok := sections[env]; ok {
		return queries
	}
	return sections["defaults"]
}
