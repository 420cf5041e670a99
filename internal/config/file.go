// Where: ec2-starter/internal/config/file.go
// What: Optional YAML configuration file for local invocations.
// Why: Keep per-target settings in a reviewed file instead of shell exports.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"

	"github.com/poruru/ec2-starter/internal/constants"
	"github.com/poruru/ec2-starter/internal/envutil"
)

const schemaURL = "starter.schema.json"

//go:embed schema/starter.schema.json
var schemaSource []byte

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// File mirrors the execution-context keys in YAML form.
type File struct {
	InstanceID          string `json:"instanceId,omitempty"`
	Region              string `json:"region,omitempty"`
	Endpoint            string `json:"endpoint,omitempty"`
	DryRun              *bool  `json:"dryRun,omitempty"`
	OnMissingInstanceID string `json:"onMissingInstanceId,omitempty"`
}

// Load reads and validates a config file.
func Load(path string) (File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config %s: %w", path, err)
	}
	file, err := Parse(content)
	if err != nil {
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}
	return file, nil
}

// Parse validates YAML content against the embedded schema and decodes it.
func Parse(content []byte) (File, error) {
	sch, err := loadSchema()
	if err != nil {
		return File{}, err
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return File{}, fmt.Errorf("convert yaml to json: %w", err)
	}
	if bytes.Equal(bytes.TrimSpace(jsonData), []byte("null")) {
		return File{}, nil
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return File{}, fmt.Errorf("unmarshal json: %w", err)
	}
	if err := sch.Validate(document); err != nil {
		return File{}, err
	}

	var file File
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return File{}, fmt.Errorf("decode config: %w", err)
	}
	return file, nil
}

// Env flattens the file into execution-context keys. Unset fields are omitted
// so later layers can supply them.
func (f File) Env() envutil.MapEnv {
	env := envutil.MapEnv{}
	setIfPresent(env, constants.EnvInstanceID, f.InstanceID)
	setIfPresent(env, constants.EnvAWSRegion, f.Region)
	setIfPresent(env, constants.EnvEndpointURL, f.Endpoint)
	setIfPresent(env, constants.EnvOnMissingTarget, f.OnMissingInstanceID)
	if f.DryRun != nil {
		env[constants.EnvDryRun] = strconv.FormatBool(*f.DryRun)
	}
	return env
}

func setIfPresent(env envutil.MapEnv, key, value string) {
	if value != "" {
		env[key] = value
	}
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaSource)); err != nil {
			schemaErr = fmt.Errorf("load config schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
