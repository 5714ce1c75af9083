// Package manifest provides types and utilities for loading and validating
// bundle manifest files. A manifest defines multiple bundle profiles with
// per-profile filter rules, enabling batch runs.
//
// # Manifest Format
//
// Manifests can be written in YAML or JSON format:
//
//	profiles:
//	  - name: backend
//	    root: ./services/api
//	    output: backend.txt
//	    extension: .py
//	    exclude_dirs: [migrations]
//	    exclude_basenames: [__init__.py]
//	  - name: frontend
//	    root: ./web
//	    extension: .ts
//	options:
//	  continue_on_error: true
//	  compress: false
//
// # Usage
//
// Load a manifest file:
//
//	loader := manifest.NewLoader()
//	cfg, err := loader.Load("bundles.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, profile := range cfg.Profiles {
//	    // Run each bundle
//	}
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrNoProfiles: manifest has no profiles defined
//   - ErrEmptyRoot: profile is missing required root field
//   - ErrDuplicateOutput: two profiles write the same artifact
//   - ErrInvalidFormat: file is not valid YAML/JSON
//   - ErrFileNotFound: manifest file does not exist
//   - ErrUnsupportedExt: unsupported file extension
package manifest
