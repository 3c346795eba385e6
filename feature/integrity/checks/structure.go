package checks

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"brick-validator/core/manifest"
	"brick-validator/core/report"
)

// CheckBrickDir verifies the asset directory exists and is a directory.
// A failure here gates the rest of the run.
func CheckBrickDir(brickDir string, rep *report.Report) bool {
	info, err := os.Stat(brickDir)
	if err != nil {
		rep.AddError(report.KindManifestMalformed,
			fmt.Sprintf("The '%s' directory not found", filepath.Base(brickDir)),
			fmt.Sprintf("Directory at %s", brickDir),
			"Directory does not exist")
		return false
	}
	if !info.IsDir() {
		rep.AddError(report.KindManifestMalformed,
			fmt.Sprintf("'%s' exists but is not a directory", filepath.Base(brickDir)),
			"Directory",
			"File or other type")
		return false
	}
	rep.AddSuccess("Brick directory exists")
	return true
}

// CheckAssetFiles verifies each declared asset path exists as a regular
// file under the brick directory. Every path is checked independently;
// all results are reported. The returned set holds the paths that exist
// as regular files, so schema reconciliation can skip the rest.
func CheckAssetFiles(brickDir string, declared []string, rep *report.Report) map[string]bool {
	present := make(map[string]bool, len(declared))

	for _, assetPath := range declared {
		fullPath := filepath.Join(brickDir, assetPath)

		info, err := os.Stat(fullPath)
		switch {
		case err != nil:
			rep.AddError(report.KindAssetMissing,
				fmt.Sprintf("Asset file not found: %s", assetPath),
				fmt.Sprintf("File at %s", fullPath),
				"File does not exist")
		case !info.Mode().IsRegular():
			rep.AddError(report.KindAssetMissing,
				fmt.Sprintf("Asset path is not a file: %s", assetPath),
				"Regular file",
				"Directory or other type")
		default:
			present[assetPath] = true
			rep.AddSuccess(fmt.Sprintf("Asset file exists: %s", assetPath))
		}
	}

	return present
}

// CheckAssetSets reconciles, per extension, the set of files physically
// present under the brick directory (recursive) against the set of
// declared asset paths with that extension. Each extension is an
// independent comparison; mismatches in either direction are separate
// errors listing the offending paths sorted lexicographically.
func CheckAssetSets(brickDir string, declared []string, rep *report.Report) error {
	onDisk := make(map[string]map[string]bool, len(manifest.SetExtensions))
	inYAML := make(map[string]map[string]bool, len(manifest.SetExtensions))
	for _, ext := range manifest.SetExtensions {
		onDisk[ext] = make(map[string]bool)
		inYAML[ext] = make(map[string]bool)
	}

	err := filepath.WalkDir(brickDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(brickDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if ext := manifest.ExtensionOf(rel); ext != "" {
			onDisk[ext][rel] = true
		}
		return nil
	})
	if err != nil {
		rep.AddError(report.KindIOError,
			fmt.Sprintf("Failed to list brick directory: %v", err), "", "")
		return err
	}

	for _, assetPath := range declared {
		if ext := manifest.ExtensionOf(assetPath); ext != "" {
			inYAML[ext][assetPath] = true
		}
	}

	for _, ext := range manifest.SetExtensions {
		reconcileExtension(ext, onDisk[ext], inYAML[ext], rep)
	}
	return nil
}

// reconcileExtension compares one extension group in both directions.
func reconcileExtension(ext string, onDisk, inYAML map[string]bool, rep *report.Report) {
	missingInYAML := difference(onDisk, inYAML)
	extraInYAML := difference(inYAML, onDisk)

	if len(missingInYAML) == 0 && len(extraInYAML) == 0 {
		if len(onDisk) > 0 {
			rep.AddSuccess(fmt.Sprintf("All %d %s file(s) accounted for", len(onDisk), ext))
		}
		return
	}

	if len(missingInYAML) > 0 {
		rep.AddError(report.KindAssetSetMismatch,
			fmt.Sprintf("Found %s files in brick directory not listed in YAML", ext),
			fmt.Sprintf("All %s files listed in assets", ext),
			fmt.Sprintf("Missing from YAML: %s", strings.Join(missingInYAML, ", ")))
	}
	if len(extraInYAML) > 0 {
		rep.AddError(report.KindAssetSetMismatch,
			fmt.Sprintf("Found %s files listed in YAML but not in brick directory", ext),
			"All YAML assets exist as files",
			fmt.Sprintf("Not found in brick dir: %s", strings.Join(extraInYAML, ", ")))
	}
}

// difference returns the members of a that are not in b, sorted.
func difference(a, b map[string]bool) []string {
	var out []string
	for member := range a {
		if !b[member] {
			out = append(out, member)
		}
	}
	sort.Strings(out)
	return out
}
