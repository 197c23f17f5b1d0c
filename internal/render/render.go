// Package render emits the generated file skeletons that accompany the
// compose stack: the sample inference microservice (Dockerfile, Python
// requirements, service and updater scripts) and the init.config wallet
// helper script.
//
// Templates are embedded in the binary and rendered with text/template.
// Every artifact is written once and left untouched on later runs so
// operator modifications survive reprovisioning.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/0xLogan-x/allora-worker/internal/config"
	"github.com/0xLogan-x/allora-worker/internal/logging"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// skeletonData feeds the inference service templates.
type skeletonData struct {
	Port int
}

// skeletonFiles maps template names to the filenames written inside the
// inference directory. The updater script is part of the skeleton because
// the compose updater service runs it from the same image.
var skeletonFiles = map[string]string{
	"Dockerfile.tmpl":           "Dockerfile",
	"requirements.txt.tmpl":     "requirements.txt",
	"inference_service.py.tmpl": "inference_service.py",
	"update.py.tmpl":            "update.py",
}

// WriteInferenceSkeleton emits the sample inference service into dir.
// Skipped entirely when the directory already exists. Returns true when the
// skeleton was created by this call.
func WriteInferenceSkeleton(dir string) (bool, error) {
	if _, err := os.Stat(dir); err == nil {
		logging.Info("Reusing existing inference skeleton %s", dir)
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to check inference directory %s: %w", dir, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("failed to create inference directory %s: %w", dir, err)
	}

	data := skeletonData{Port: config.InferenceServicePort}
	for tmplName, fileName := range skeletonFiles {
		if err := renderFile(tmplName, filepath.Join(dir, fileName), data, 0o644); err != nil {
			return false, err
		}
	}

	logging.Info("Created inference service skeleton in %s", dir)
	return true, nil
}

// initScriptData feeds the init.config template.
type initScriptData struct {
	ConfigFile string
}

// WriteInitScript emits the wallet-init helper script once. The script lets
// operators re-run wallet field population with jq outside this tool; the
// tool itself patches the document natively.
func WriteInitScript(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		logging.Debug("Reusing existing init script %s", path)
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to check init script %s: %w", path, err)
	}

	data := initScriptData{ConfigFile: config.WorkerConfigFileName}
	if err := renderFile("init.config.tmpl", path, data, 0o700); err != nil {
		return false, err
	}

	logging.Info("Created wallet init helper %s", path)
	return true, nil
}

// renderFile renders one embedded template to disk.
func renderFile(tmplName, path string, data any, mode os.FileMode) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, tmplName, data); err != nil {
		return fmt.Errorf("failed to render template %s: %w", tmplName, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
