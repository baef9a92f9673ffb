// Package risk produces 4x4-matrix chemical risk assessments for extracted
// SDS records. The numeric fields are authoritative: scores are recomputed
// from probability and severity after parsing, and bands derive from scores,
// never from the model's level labels.
package risk

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/chemledger/sdsforge/internal/locale"
	"github.com/chemledger/sdsforge/internal/providers"
	"github.com/chemledger/sdsforge/internal/schema"
	"github.com/chemledger/sdsforge/internal/sds"
)

//go:embed system.tmpl
var systemPrompt string

//go:embed user.tmpl
var userPromptTmpl string

var userTemplate = template.Must(template.New("user").Parse(userPromptTmpl))

// Assessment is one risk assessment for one record.
type Assessment struct {
	MainHazardousComponent   string `json:"main_hazardous_component"`
	ExposureMode             string `json:"exposure_mode"`
	ExposureFrequency        string `json:"exposure_frequency"`
	ExposureDuration         string `json:"exposure_duration"`
	AffectedBodyParts        string `json:"affected_body_parts"`
	ProtectionPresent        string `json:"protection_present"`
	PPESpecification         string `json:"ppe_specification"`
	Probability              int    `json:"probability"`
	Severity                 int    `json:"severity"`
	RiskScore                int    `json:"risk_score"`
	RiskLevel                string `json:"risk_level"`
	RequiredAction           string `json:"required_action"`
	BEMRequired              string `json:"bem_required"`
	ExposureRegistryRequired string `json:"exposure_registry_required"`
	PostActionProbability    int    `json:"post_action_probability"`
	PostActionSeverity       int    `json:"post_action_severity"`
	ResidualRisk             int    `json:"residual_risk"`
	ResidualRiskLevel        string `json:"residual_risk_level"`
}

// Band returns the band of the (recomputed) risk score.
func (a *Assessment) Band() Band {
	return BandFor(a.RiskScore)
}

// ResidualBand returns the band of the residual risk score.
func (a *Assessment) ResidualBand() Band {
	return BandFor(a.ResidualRisk)
}

// Config configures the assessor.
type Config struct {
	Client      providers.LLMClient
	Model       string
	Temperature float64
	MaxTokens   int
	Logger      *slog.Logger
}

// Assessor drives risk-assessment calls against an LLM client.
type Assessor struct {
	client      providers.LLMClient
	model       string
	temperature float64
	maxTokens   int
	logger      *slog.Logger
}

// NewAssessor creates an assessor.
func NewAssessor(cfg Config) (*Assessor, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("risk: client is required")
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.1
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 2000
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Assessor{
		client:      cfg.Client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		logger:      cfg.Logger,
	}, nil
}

// Assess runs the risk-assessment call for one record. The returned
// assessment has consistent numbers: scores equal probability x severity
// with both factors clamped into 1-4.
func (a *Assessor) Assess(ctx context.Context, rec sds.Record, loc locale.Strings) (*Assessment, error) {
	recordJSON, err := json.Marshal(rec.Fields)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize record: %w", err)
	}
	schemaRaw, err := json.Marshal(schema.RiskJSONSchema())
	if err != nil {
		return nil, fmt.Errorf("failed to serialize schema: %w", err)
	}

	res, err := a.client.Chat(ctx, &providers.ChatRequest{
		Model: a.model,
		Messages: []providers.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(loc.Name, string(recordJSON))},
		},
		Temperature:    a.temperature,
		MaxTokens:      a.maxTokens,
		ResponseFormat: &providers.ResponseFormat{Type: "json_schema", JSONSchema: schemaRaw},
	})
	if err != nil {
		return nil, fmt.Errorf("risk assessment call failed: %w", err)
	}

	var assessment Assessment
	if err := json.Unmarshal(res.ParsedJSON, &assessment); err != nil {
		return nil, fmt.Errorf("failed to decode risk assessment: %w", err)
	}

	assessment.reconcile()
	a.logger.Debug("risk assessment finished",
		"document", rec.SourceDocument,
		"score", assessment.RiskScore,
		"band", assessment.Band().String())
	return &assessment, nil
}

// reconcile makes the numeric fields internally consistent regardless of
// what the model returned.
func (a *Assessment) reconcile() {
	a.Probability = clampScale(a.Probability)
	a.Severity = clampScale(a.Severity)
	a.RiskScore = a.Probability * a.Severity

	a.PostActionProbability = clampScale(a.PostActionProbability)
	a.PostActionSeverity = clampScale(a.PostActionSeverity)
	a.ResidualRisk = a.PostActionProbability * a.PostActionSeverity
}

func clampScale(v int) int {
	if v < 1 {
		return 1
	}
	if v > 4 {
		return 4
	}
	return v
}

func userPrompt(language, recordJSON string) string {
	var buf bytes.Buffer
	data := struct {
		Language   string
		RecordJSON string
	}{Language: language, RecordJSON: recordJSON}
	if err := userTemplate.Execute(&buf, data); err != nil {
		return userPromptTmpl
	}
	return buf.String()
}
