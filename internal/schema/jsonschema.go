package schema

// ExtractionJSONSchema builds the response-format document for SDS
// extraction calls. Every data field accepts string or null so the model can
// report absence explicitly; the bookkeeping fields confidence_score and
// missing_fields travel alongside the data.
func ExtractionJSONSchema() map[string]any {
	props := make(map[string]any, len(fields)+2)
	for _, f := range fields {
		props[f.Key] = map[string]any{
			"type":        []string{"string", "null"},
			"description": f.Description,
		}
	}
	props["confidence_score"] = map[string]any{
		"type":        []string{"number", "null"},
		"description": "Overall extraction confidence 0.0-1.0",
	}
	props["missing_fields"] = map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": "Field keys expected in the SDS but not found",
	}

	required := make([]string, 0, len(fields)+2)
	for _, f := range fields {
		required = append(required, f.Key)
	}
	required = append(required, "confidence_score", "missing_fields")

	return map[string]any{
		"type": "json_schema",
		"json_schema": map[string]any{
			"name":   "sds_extraction",
			"strict": true,
			"schema": map[string]any{
				"type":                 "object",
				"properties":           props,
				"required":             required,
				"additionalProperties": false,
			},
		},
	}
}

// RiskJSONSchema builds the response-format document for risk assessment
// calls. Probability and severity are bounded 1-4; scores are recomputed
// from them after parsing, so bounds here are a first line of defense only.
func RiskJSONSchema() map[string]any {
	scale := func(desc string) map[string]any {
		return map[string]any{"type": "integer", "minimum": 1, "maximum": 4, "description": desc}
	}
	str := func(desc string) map[string]any {
		return map[string]any{"type": "string", "description": desc}
	}
	props := map[string]any{
		"main_hazardous_component":   str("Most hazardous component driving the assessment"),
		"exposure_mode":              str("How workers are exposed"),
		"exposure_frequency":         str("How often exposure occurs"),
		"exposure_duration":          str("Typical exposure duration"),
		"affected_body_parts":        str("Body parts affected"),
		"protection_present":         str("Whether protection is in place"),
		"ppe_specification":          str("Concrete PPE spec: glove material, thickness, breakthrough time, EN standard; filter type; eye and skin protection standards"),
		"probability":                scale("Exposure probability on the 4-point scale"),
		"severity":                   scale("Harm severity on the 4-point scale"),
		"risk_score":                 map[string]any{"type": "integer", "minimum": 1, "maximum": 16, "description": "probability x severity"},
		"risk_level":                 str("Risk level label in the target language"),
		"required_action":            str("Risk reduction action required"),
		"bem_required":               str("Whether biological exposure monitoring is required"),
		"exposure_registry_required": str("Whether an employer exposure registry is mandatory"),
		"post_action_probability":    scale("Probability after the required action"),
		"post_action_severity":       scale("Severity after the required action"),
		"residual_risk":              map[string]any{"type": "integer", "minimum": 1, "maximum": 16, "description": "Residual risk score"},
		"residual_risk_level":        str("Residual risk level label"),
	}
	required := []string{
		"main_hazardous_component", "exposure_mode", "exposure_frequency", "exposure_duration",
		"affected_body_parts", "protection_present", "ppe_specification", "probability", "severity",
		"risk_score", "risk_level", "required_action", "bem_required", "exposure_registry_required",
		"post_action_probability", "post_action_severity", "residual_risk", "residual_risk_level",
	}
	return map[string]any{
		"type": "json_schema",
		"json_schema": map[string]any{
			"name":   "sds_risk_assessment",
			"strict": true,
			"schema": map[string]any{
				"type":                 "object",
				"properties":           props,
				"required":             required,
				"additionalProperties": false,
			},
		},
	}
}
