package content

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// collectionSchema constrains a collection document: a properties block
// and a map of numbered questions, each with a prompt, four options and
// a 1-based correct answer.
const collectionSchema = `{
	"type": "object",
	"properties": {
		"properties": {
			"type": "object",
			"properties": {
				"practiceQuestionsPerTest": {"type": "integer", "minimum": 1},
				"simulatorQuestions": {"type": "integer", "minimum": 1},
				"timeLimit": {"type": "integer", "minimum": 1},
				"allowedMistakes": {"type": "integer", "minimum": 0}
			}
		},
		"questions": {
			"type": "object",
			"propertyNames": {"pattern": "^[0-9]+$"},
			"additionalProperties": {
				"type": "object",
				"properties": {
					"question": {"type": "string", "minLength": 1},
					"option1": {"type": "string", "minLength": 1},
					"option2": {"type": "string", "minLength": 1},
					"option3": {"type": "string", "minLength": 1},
					"option4": {"type": "string", "minLength": 1},
					"correctAnswer": {"type": "integer", "minimum": 1, "maximum": 4},
					"image": {"type": "string"}
				},
				"required": ["question", "option1", "option2", "option3", "option4", "correctAnswer"],
				"additionalProperties": false
			}
		}
	},
	"required": ["questions"],
	"additionalProperties": false
}`

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(collectionSchema)))
	if err != nil {
		panic(fmt.Sprintf("parse collection schema: %v", err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://collection.json", parsed); err != nil {
		panic(fmt.Sprintf("add collection schema: %v", err))
	}
	s, err := c.Compile("schema://collection.json")
	if err != nil {
		panic(fmt.Sprintf("compile collection schema: %v", err))
	}
	return s
}

// validateDocument checks raw collection JSON against the schema.
// The library expects a parsed JSON value, not raw bytes.
func validateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
