package storage

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// projectSchema describes .relay/project.json.
const projectSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name"],
  "properties": {
    "version": {"type": "string"},
    "name": {"type": "string"},
    "selected_environment": {"type": ["string", "null"]},
    "environments": {
      "type": ["object", "null"],
      "additionalProperties": {
        "type": "object",
        "properties": {
          "values": {
            "type": ["object", "null"],
            "additionalProperties": {"type": "string"}
          }
        }
      }
    },
    "authorization": {
      "type": ["object", "null"],
      "additionalProperties": {"type": "string"}
    },
    "last_call_response_path": {"type": ["string", "null"]}
  }
}`

var projectSchemaLoader = gojsonschema.NewStringLoader(projectSchema)

// ProjectSchemaError lists the violations found in a project document.
type ProjectSchemaError struct {
	Path       string
	Violations []string
}

func (e *ProjectSchemaError) Error() string {
	return fmt.Sprintf("invalid project file %s: %s", e.Path, strings.Join(e.Violations, "; "))
}

// validateProject checks data against the project schema.
func validateProject(path string, data []byte) error {
	result, err := gojsonschema.Validate(projectSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return &ProjectSchemaError{Path: path, Violations: []string{err.Error()}}
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}
	return &ProjectSchemaError{Path: path, Violations: violations}
}
