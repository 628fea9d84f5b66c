package ai

import (
	"context"
	"fmt"
	"strings"

	"resume-builder-api/internal/infra/openai"
)

// Service wraps the OpenAI client with resume-writing prompts. One
// instance per process, injected into handlers.
type Service struct {
	client *openai.Client
}

func NewService(client *openai.Client) *Service {
	return &Service{client: client}
}

// ExperienceRef is the slice of an experience entry the summary prompt
// needs.
type ExperienceRef struct {
	Position string `json:"position"`
	Company  string `json:"company"`
}

// GenerateBulletPoints produces 3-5 achievement-focused bullet points
// for an experience entry.
func (s *Service) GenerateBulletPoints(ctx context.Context, position, company, description string) ([]string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate 3-5 professional bullet points for a resume experience section.\n")
	fmt.Fprintf(&b, "Position: %s\nCompany: %s\n", position, company)
	if description != "" {
		fmt.Fprintf(&b, "Additional context: %s\n", description)
	}
	b.WriteString(`
Requirements:
- Start each bullet point with a strong action verb
- Include quantifiable achievements when possible
- Use industry-relevant keywords
- Keep each point concise (1-2 lines max)
- Focus on accomplishments and impact, not just responsibilities

Return only the bullet points, one per line, starting with "-"`)

	content, err := s.client.Complete(ctx, b.String(), 300, 0.7)
	if err != nil {
		return nil, err
	}
	return parseBulletPoints(content), nil
}

var improveContexts = map[string]string{
	"summary":    "Improve this professional summary for a resume. Make it compelling, concise, and highlight key value propositions:",
	"experience": "Improve this job experience description for a resume. Make it more impactful and achievement-focused:",
	"education":  "Improve this education description for a resume. Make it more relevant and accomplishment-oriented:",
	"skill":      "Improve this skill description for a resume. Make it more professional and specific:",
}

// ValidImproveContext reports whether a client-supplied improve-text
// context is one of the supported section kinds.
func ValidImproveContext(context string) bool {
	_, ok := improveContexts[context]
	return ok
}

// ImproveText rewrites a resume fragment for the given section context.
// Falls back to the original text if the model returns nothing.
func (s *Service) ImproveText(ctx context.Context, text, sectionContext string) (string, error) {
	lead, ok := improveContexts[sectionContext]
	if !ok {
		return "", fmt.Errorf("unknown improve context %q", sectionContext)
	}

	prompt := fmt.Sprintf(`%s

"%s"

Requirements:
- Keep it professional and concise
- Use industry-appropriate language
- Focus on achievements and value
- Optimize for ATS (Applicant Tracking Systems)
- Return only the improved text, no additional commentary`, lead, text)

	content, err := s.client.Complete(ctx, prompt, 200, 0.6)
	if err != nil {
		return "", err
	}
	improved := strings.TrimSpace(content)
	if improved == "" {
		return text, nil
	}
	return improved, nil
}

// GenerateSummary composes a 2-3 sentence professional summary from the
// top experiences and skills.
func (s *Service) GenerateSummary(ctx context.Context, firstName, lastName, position string, experience []ExperienceRef, skills []string) (string, error) {
	refs := experience
	if len(refs) > 3 {
		refs = refs[:3]
	}
	parts := make([]string, 0, len(refs))
	for _, e := range refs {
		parts = append(parts, fmt.Sprintf("%s at %s", e.Position, e.Company))
	}

	topSkills := skills
	if len(topSkills) > 8 {
		topSkills = topSkills[:8]
	}

	prompt := fmt.Sprintf(`Create a professional resume summary for:
Name: %s %s
Target Position: %s
Experience: %s
Key Skills: %s

Requirements:
- 2-3 sentences maximum
- Highlight unique value proposition
- Include relevant keywords for the target position
- Professional tone
- Quantify achievements when possible
- Return only the summary text`,
		firstName, lastName, position,
		strings.Join(parts, ", "), strings.Join(topSkills, ", "))

	content, err := s.client.Complete(ctx, prompt, 150, 0.7)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

// SuggestSkills returns up to 8 skills relevant to the position that are
// not already listed.
func (s *Service) SuggestSkills(ctx context.Context, position string, currentSkills []string) ([]string, error) {
	prompt := fmt.Sprintf(`Suggest 5-8 relevant skills for a %s position that are not already in this list: %s

Requirements:
- Focus on industry-relevant technical and soft skills
- Include both hard and soft skills
- Make suggestions specific to the position
- Return only the skill names, one per line
- No additional text or explanation`, position, strings.Join(currentSkills, ", "))

	content, err := s.client.Complete(ctx, prompt, 150, 0.6)
	if err != nil {
		return nil, err
	}
	return parseSkillLines(content, currentSkills, 8), nil
}

// OptimizeForATS rewrites resume text with applicant-tracking-system
// keywords for the target position.
func (s *Service) OptimizeForATS(ctx context.Context, text, targetPosition string) (string, error) {
	prompt := fmt.Sprintf(`Optimize this resume text for ATS (Applicant Tracking Systems) for a %s position:

"%s"

Requirements:
- Include relevant keywords for the position
- Use standard formatting
- Avoid special characters and graphics
- Use common section headings
- Include industry-specific terms
- Maintain readability
- Return only the optimized text`, targetPosition, text)

	content, err := s.client.Complete(ctx, prompt, 250, 0.5)
	if err != nil {
		return "", err
	}
	optimized := strings.TrimSpace(content)
	if optimized == "" {
		return text, nil
	}
	return optimized, nil
}

// parseBulletPoints extracts bullet lines from model output, tolerating
// "-", "*" and "•" markers.
func parseBulletPoints(content string) []string {
	var points []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		marked := false
		for _, marker := range []string{"•", "-", "*"} {
			if strings.HasPrefix(line, marker) {
				line = strings.TrimSpace(strings.TrimPrefix(line, marker))
				marked = true
				break
			}
		}
		if marked && line != "" {
			points = append(points, line)
		}
	}
	return points
}

// parseSkillLines extracts per-line skills, dropping empties and skills
// already present (case-insensitive).
func parseSkillLines(content string, existing []string, limit int) []string {
	have := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		have[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	var skills []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "-"))
		if line == "" {
			continue
		}
		if _, dup := have[strings.ToLower(line)]; dup {
			continue
		}
		have[strings.ToLower(line)] = struct{}{}
		skills = append(skills, line)
		if len(skills) == limit {
			break
		}
	}
	return skills
}
