package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"brick-validator/core/report"
)

// Load reads and decodes the manifest at path, recording the structural
// diagnostics of the top-level gate: file existence, YAML parse, root
// type, and required keys. It returns ok=false when the gate fails, in
// which case the whole run must stop. The decode step and the structural
// validation are the same pass; no loosely-typed data escapes.
func Load(path string, rep *report.Report) (*Manifest, bool) {
	name := filepath.Base(path)

	if _, err := os.Stat(path); err != nil {
		rep.AddError(report.KindManifestMissing,
			fmt.Sprintf("%s file not found in repository root", name),
			fmt.Sprintf("File at %s", path),
			"File does not exist")
		return nil, false
	}
	rep.AddSuccess(fmt.Sprintf("%s file exists", name))

	data, err := os.ReadFile(path)
	if err != nil {
		rep.AddError(report.KindIOError,
			fmt.Sprintf("Failed to read %s: %v", name, err), "", "")
		return nil, false
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		rep.AddError(report.KindManifestUnparseable,
			fmt.Sprintf("Failed to parse %s: %v", name, err),
			"Valid YAML syntax",
			"YAML parsing error")
		return nil, false
	}

	if doc == nil {
		rep.AddError(report.KindManifestUnparseable,
			fmt.Sprintf("%s is empty", name),
			"Valid YAML content",
			"Empty file")
		return nil, false
	}

	root, ok := doc.(map[string]any)
	if !ok {
		rep.AddError(report.KindManifestMalformed,
			fmt.Sprintf("%s must contain a mapping", name),
			"YAML mapping",
			fmt.Sprintf("Type: %T", doc))
		return nil, false
	}
	rep.AddSuccess(fmt.Sprintf("%s parsed successfully", name))

	m, ok := validateTopLevel(root, name, rep)
	if !ok {
		return nil, false
	}
	return m, true
}

func validateTopLevel(root map[string]any, name string, rep *report.Report) (*Manifest, bool) {
	required := []string{"brick", "description", "assets"}
	var missing []string
	for _, key := range required {
		if _, ok := root[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		found := make([]string, 0, len(root))
		for key := range root {
			found = append(found, key)
		}
		sort.Strings(found)
		rep.AddError(report.KindManifestMalformed,
			fmt.Sprintf("Missing required top-level keys: %s", strings.Join(missing, ", ")),
			fmt.Sprintf("Keys: %s", strings.Join(required, ", ")),
			fmt.Sprintf("Found keys: %s", strings.Join(found, ", ")))
		return nil, false
	}

	brick, ok := root["brick"].(string)
	if !ok || strings.TrimSpace(brick) == "" {
		rep.AddError(report.KindManifestMalformed,
			"The 'brick' key must be a non-empty string",
			"Non-empty string",
			fmt.Sprintf("Type: %T, Value: %v", root["brick"], root["brick"]))
		return nil, false
	}

	description, ok := root["description"].(string)
	if !ok || strings.TrimSpace(description) == "" {
		rep.AddError(report.KindManifestMalformed,
			"The 'description' key must be a non-empty string",
			"Non-empty string",
			fmt.Sprintf("Type: %T", root["description"]))
		return nil, false
	}

	assets, ok := root["assets"].(map[string]any)
	if !ok {
		rep.AddError(report.KindManifestMalformed,
			"The 'assets' key must be a mapping",
			"Mapping of asset path to entry",
			fmt.Sprintf("Type: %T", root["assets"]))
		return nil, false
	}
	if len(assets) == 0 {
		rep.AddError(report.KindManifestMalformed,
			"The 'assets' mapping cannot be empty",
			"At least one asset defined",
			"Empty mapping")
		return nil, false
	}

	rep.AddSuccess("All required top-level keys present and valid")
	rep.AddSuccess(fmt.Sprintf("Brick name: %s", brick))
	rep.AddSuccess(fmt.Sprintf("Found %d asset(s) defined", len(assets)))

	return &Manifest{
		Brick:       brick,
		Description: description,
		Assets:      make(map[string]Asset, len(assets)),
		raw:         assets,
	}, true
}

// ValidateEntries checks every asset entry for a non-empty string
// description and schema. All entries are checked and every failure is
// reported; entry problems do not abort the run, but invalid entries
// are marked so schema reconciliation skips them.
func (m *Manifest) ValidateEntries(rep *report.Report) bool {
	allValid := true

	for _, path := range m.Paths() {
		entry, ok := m.raw[path].(map[string]any)
		if !ok {
			m.Assets[path] = Asset{}
			rep.AddError(report.KindAssetEntryInvalid,
				fmt.Sprintf("Asset '%s' must have a mapping value", path),
				"Mapping with 'description' and 'schema' keys",
				fmt.Sprintf("Type: %T", m.raw[path]))
			allValid = false
			continue
		}

		asset := Asset{Valid: true}

		if _, ok := entry["description"]; !ok {
			rep.AddError(report.KindAssetEntryInvalid,
				fmt.Sprintf("Asset '%s' missing 'description' key", path),
				"'description' key present",
				"Key not found")
			asset.Valid = false
		} else if description, ok := entry["description"].(string); !ok || strings.TrimSpace(description) == "" {
			rep.AddError(report.KindAssetEntryInvalid,
				fmt.Sprintf("Asset '%s' description must be a non-empty string", path),
				"Non-empty string",
				fmt.Sprintf("Type: %T", entry["description"]))
			asset.Valid = false
		} else {
			asset.Description = description
		}

		if _, ok := entry["schema"]; !ok {
			rep.AddError(report.KindAssetEntryInvalid,
				fmt.Sprintf("Asset '%s' missing 'schema' key", path),
				"'schema' key present",
				"Key not found")
			asset.Valid = false
		} else if schema, ok := entry["schema"].(string); !ok || strings.TrimSpace(schema) == "" {
			rep.AddError(report.KindAssetEntryInvalid,
				fmt.Sprintf("Asset '%s' schema must be a non-empty string", path),
				"Non-empty string",
				fmt.Sprintf("Type: %T", entry["schema"]))
			asset.Valid = false
		} else {
			asset.Schema = schema
		}

		m.Assets[path] = asset
		if !asset.Valid {
			allValid = false
		}
	}

	if allValid {
		rep.AddSuccess("All assets have required 'description' and 'schema' keys")
	}
	return allValid
}

// Paths returns the declared asset paths sorted lexicographically.
// YAML insertion order is irrelevant to validation; sorting keeps
// report output deterministic.
func (m *Manifest) Paths() []string {
	paths := make([]string, 0, len(m.raw))
	for path := range m.raw {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
