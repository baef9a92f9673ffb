package extract

import (
	"bytes"
	_ "embed"
	"text/template"
)

//go:embed system.tmpl
var systemPrompt string

//go:embed user.tmpl
var userPromptTmpl string

//go:embed merge_system.tmpl
var mergeSystemPrompt string

//go:embed merge_user.tmpl
var mergeUserTmpl string

var (
	userTemplate      = template.Must(template.New("user").Parse(userPromptTmpl))
	mergeUserTemplate = template.Must(template.New("merge_user").Parse(mergeUserTmpl))
)

// SystemPrompt returns the system prompt for SDS extraction.
func SystemPrompt() string {
	return systemPrompt
}

// UserPrompt builds the user prompt for SDS extraction.
func UserPrompt(language, docText string) string {
	var buf bytes.Buffer
	data := struct {
		Language     string
		DocumentText string
	}{Language: language, DocumentText: docText}
	if err := userTemplate.Execute(&buf, data); err != nil {
		return userPromptTmpl
	}
	return buf.String()
}

// MergeSystemPrompt returns the system prompt for gap-fill merging.
func MergeSystemPrompt() string {
	return mergeSystemPrompt
}

// MergeUserPrompt builds the user prompt for gap-fill merging.
func MergeUserPrompt(language, recordJSON string, gaps []string, findings string) string {
	var buf bytes.Buffer
	data := struct {
		Language   string
		RecordJSON string
		Gaps       []string
		Findings   string
	}{Language: language, RecordJSON: recordJSON, Gaps: gaps, Findings: findings}
	if err := mergeUserTemplate.Execute(&buf, data); err != nil {
		return mergeUserTmpl
	}
	return buf.String()
}
