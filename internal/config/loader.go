package config

import (
	"encoding/json"
	"fmt"

	sigsyaml "sigs.k8s.io/yaml"

	"roster/internal/api"
)

// ParseDefinition parses a YAML or JSON definition into a service record
// and checks its declared fields. Any persisted status is discarded: a
// loaded definition starts Inactive and stays there until validated.
func ParseDefinition(data []byte) (api.ServiceRecord, error) {
	// YAML is a superset of JSON here: convert to JSON first so both input
	// forms flow through the same json tags.
	jsonData, err := sigsyaml.YAMLToJSON(data)
	if err != nil {
		return api.ServiceRecord{}, fmt.Errorf("invalid YAML: %w", err)
	}

	var record api.ServiceRecord
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return api.ServiceRecord{}, fmt.Errorf("invalid definition: %w", err)
	}
	record.Status = api.ServiceStatus{State: api.StateInactive}

	if errs := ValidateDefinition(record); errs.HasErrors() {
		return api.ServiceRecord{}, errs
	}
	return record, nil
}

// marshalDefinition renders a record as YAML via its json tags, so the
// on-disk form matches what ParseDefinition reads.
func marshalDefinition(record api.ServiceRecord) ([]byte, error) {
	jsonData, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	return sigsyaml.JSONToYAML(jsonData)
}
