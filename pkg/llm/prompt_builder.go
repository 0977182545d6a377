package llm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/paa-ai/skydesk/pkg/intent"
	"github.com/paa-ai/skydesk/pkg/rag"
)

// GeneralKnowledgeDisclosure is the required prefix when an answer draws
// on the model's own knowledge instead of retrieved records.
const GeneralKnowledgeDisclosure = "Based on general aviation information..."

// sectionLabels name the context blocks by their source.
var sectionLabels = map[intent.Intent]string{
	intent.IntentFlight:  "FLIGHT DATA",
	intent.IntentBaggage: "POLICY DATA",
	intent.IntentWeb:     "WEB DATA",
}

// PromptBuilder assembles the system instruction and context block for
// answer synthesis.
type PromptBuilder struct {
	authorityName string
}

// NewPromptBuilder creates a builder. authorityName appears in the
// assistant persona line; empty selects the default.
func NewPromptBuilder(authorityName string) *PromptBuilder {
	if authorityName == "" {
		authorityName = "PAA (Pakistan Airports Authority)"
	}
	return &PromptBuilder{authorityName: authorityName}
}

// BuildSystemInstruction renders the synthesis system prompt. Retrieved
// snippets are grouped into labeled sections; when nothing was found the
// context block says so and the disclosure rule covers the fallback.
func (b *PromptBuilder) BuildSystemInstruction(results map[intent.Intent]*rag.RetrievalResult) string {
	context := b.renderContext(results)
	if context == "" {
		context = "No official records found."
	}

	return fmt.Sprintf(`You are the %s Official Assistant.
INSTRUCTIONS:
1. Primary Source: Use the CONTEXT DATA below. Do not invent flight details that are not in it.
2. Fallback: If context is empty, use your internal knowledge.
3. Disclosure: If using internal knowledge, start with "%s"

CONTEXT DATA:
%s`, b.authorityName, GeneralKnowledgeDisclosure, context)
}

// BuildGreetingInstruction renders the short prompt used for small talk,
// which skips retrieval entirely.
func (b *PromptBuilder) BuildGreetingInstruction() string {
	return fmt.Sprintf(`You are the %s Official Assistant.
The traveller is greeting you or making small talk. Reply briefly and warmly, and offer to help with flight status, baggage policy, or airport services. Do not invent flight information.`, b.authorityName)
}

// renderContext joins found results into labeled sections in a stable
// intent order.
func (b *PromptBuilder) renderContext(results map[intent.Intent]*rag.RetrievalResult) string {
	ordered := make([]intent.Intent, 0, len(results))
	for in := range results {
		ordered = append(ordered, in)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	var sections []string
	for _, in := range ordered {
		result := results[in]
		if result == nil || !result.Found || len(result.Snippets) == 0 {
			continue
		}
		label := sectionLabels[in]
		if label == "" {
			label = strings.ToUpper(string(in)) + " DATA"
		}
		sections = append(sections, fmt.Sprintf("--- %s ---\n%s", label, strings.Join(result.Snippets, "\n")))
	}
	return strings.Join(sections, "\n")
}
