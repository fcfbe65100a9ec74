package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/skillsage/skillsage-service/internal/models"
)

// Gateway wraps the provider client with prompt building and typed
// fallbacks. Its methods never return an error: on any provider or parse
// failure the caller gets a well-formed default instead, so an AI outage
// degrades the product to generic content rather than an error screen.
type Gateway struct {
	client Client
	logger *slog.Logger
}

func NewGateway(client Client, logger *slog.Logger) *Gateway {
	return &Gateway{client: client, logger: logger}
}

// ===== RESULT TYPES =====

type InterviewAnalysis struct {
	Score        int      `json:"score"`
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

type CourseSuggestion struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

type ResumeAnalysis struct {
	MatchScore    int      `json:"match_score"`
	MissingSkills []string `json:"missing_skills"`
	Strengths     []string `json:"strengths"`
	Suggestions   []string `json:"suggestions"`
}

const jsonOnlyRule = "Return only valid JSON. Do not include explanations, markdown, or text before or after the JSON."

// ===== MENTOR CHAT =====

const mentorSystem = "You are SkillSage, an encouraging AI career mentor for students and early-career professionals. " +
	"Give practical, specific advice in a few short paragraphs."

// ChatReply generates the mentor's reply to a user message, given the
// prior messages of the session oldest-first.
func (g *Gateway) ChatReply(ctx context.Context, userMessage string, history []*models.ChatMessage) string {
	var sb strings.Builder
	for _, msg := range history {
		speaker := "Student"
		if msg.IsAI {
			speaker = "Mentor"
		}
		fmt.Fprintf(&sb, "%s: %s\n", speaker, msg.Content)
	}
	fmt.Fprintf(&sb, "Student: %s\nMentor:", userMessage)

	reply, err := g.client.GenerateText(ctx, mentorSystem, sb.String())
	if err != nil || strings.TrimSpace(reply) == "" {
		g.warn(ctx, "chat reply", err)
		return "I'm having a little trouble connecting right now, but don't let that slow you down! " +
			"Keep working toward your goals and ask me again in a moment."
	}
	return strings.TrimSpace(reply)
}

// ===== MOCK INTERVIEWS =====

var cannedQuestions = map[models.InterviewType]string{
	models.InterviewTechnical:  "Walk me through how you would design a URL shortening service, and how you would store and look up the mappings.",
	models.InterviewBehavioral: "Tell me about a time you disagreed with a teammate. How did you resolve it, and what did you learn?",
	models.InterviewCaseStudy:  "A subscription product's churn doubled last quarter. How would you investigate the cause and what would you propose?",
}

// InterviewQuestion produces one question for the given interview type.
func (g *Gateway) InterviewQuestion(ctx context.Context, interviewType models.InterviewType) string {
	prompt := fmt.Sprintf(
		"Generate one %s interview question for a junior software engineering candidate. "+
			"Return only the question text, no preamble.", interviewType)

	question, err := g.client.GenerateText(ctx, "You are an experienced interviewer.", prompt)
	if err != nil || strings.TrimSpace(question) == "" {
		g.warn(ctx, "interview question", err)
		return cannedQuestions[interviewType]
	}
	return strings.TrimSpace(question)
}

// AnalyzeInterview scores a candidate's response. The score is clamped to
// [0, 100] on every path, including successful provider replies.
func (g *Gateway) AnalyzeInterview(ctx context.Context, interviewType models.InterviewType, response string) InterviewAnalysis {
	system := "You are an experienced interviewer evaluating a candidate's answer. " + jsonOnlyRule
	prompt := fmt.Sprintf(`Evaluate this %s interview response and return a JSON object:
{"score": number 0-100, "feedback": string, "strengths": [string], "improvements": [string]}

Response:
%s`, interviewType, response)

	var analysis InterviewAnalysis
	if err := g.client.GenerateJSON(ctx, system, prompt, &analysis); err != nil {
		g.warn(ctx, "interview analysis", err)
		return defaultInterviewAnalysis()
	}
	if strings.TrimSpace(analysis.Feedback) == "" {
		return defaultInterviewAnalysis()
	}

	analysis.Score = clampScore(analysis.Score)
	return analysis
}

func defaultInterviewAnalysis() InterviewAnalysis {
	return InterviewAnalysis{
		Score:    75,
		Feedback: "Solid response. You communicated your main points clearly; adding a concrete example would make the answer even stronger.",
		Strengths: []string{
			"Clear communication",
			"Structured thinking",
		},
		Improvements: []string{
			"Support claims with specific examples",
			"Summarize your key takeaway at the end",
		},
	}
}

// ===== COURSE RECOMMENDATIONS =====

// RecommendCourses suggests courses from the user's skills and interests.
func (g *Gateway) RecommendCourses(ctx context.Context, skills, interests []string) []CourseSuggestion {
	system := "You are a curriculum advisor for a career-development platform. " + jsonOnlyRule
	prompt := fmt.Sprintf(`Given a learner with skills [%s] and interests [%s], suggest 3 courses as a JSON array:
[{"title": string, "reason": string}]`,
		strings.Join(skills, ", "), strings.Join(interests, ", "))

	var suggestions []CourseSuggestion
	if err := g.client.GenerateJSON(ctx, system, prompt, &suggestions); err != nil || len(suggestions) == 0 {
		g.warn(ctx, "course recommendations", err)
		return []CourseSuggestion{
			{Title: "Python Foundations", Reason: "A versatile starting point that supports almost every technical career path."},
			{Title: "Data Structures & Algorithms", Reason: "Core interview preparation for software roles."},
			{Title: "Full-Stack Web Development", Reason: "Hands-on project experience employers look for."},
		}
	}
	return suggestions
}

// ===== RESUME TOOLS =====

// AnalyzeResume compares a resume against a job description.
func (g *Gateway) AnalyzeResume(ctx context.Context, resume, jobDescription string) ResumeAnalysis {
	system := "You are an expert career assistant that evaluates how well a resume matches a job description. " +
		"Base all reasoning only on the provided text. " + jsonOnlyRule
	prompt := fmt.Sprintf(`Compare the resume with the job description and return a JSON object:
{"match_score": number 0-100, "missing_skills": [string], "strengths": [string], "suggestions": [string]}

Resume:
%s

Job description:
%s`, resume, jobDescription)

	var analysis ResumeAnalysis
	if err := g.client.GenerateJSON(ctx, system, prompt, &analysis); err != nil {
		g.warn(ctx, "resume analysis", err)
		return defaultResumeAnalysis()
	}
	if len(analysis.Strengths) == 0 && len(analysis.Suggestions) == 0 {
		return defaultResumeAnalysis()
	}

	analysis.MatchScore = clampScore(analysis.MatchScore)
	return analysis
}

func defaultResumeAnalysis() ResumeAnalysis {
	return ResumeAnalysis{
		MatchScore:    75,
		MissingSkills: []string{"Review the job posting for required tools you have not listed"},
		Strengths:     []string{"Relevant experience", "Clear formatting"},
		Suggestions: []string{
			"Quantify your achievements with numbers",
			"Mirror key terms from the job description",
		},
	}
}

// CoverLetter drafts a cover letter from a resume and job description.
func (g *Gateway) CoverLetter(ctx context.Context, resume, jobDescription string) string {
	prompt := fmt.Sprintf(`Write a concise, professional cover letter (3 short paragraphs) for this candidate and role.

Resume:
%s

Job description:
%s`, resume, jobDescription)

	letter, err := g.client.GenerateText(ctx, "You are a professional career writer.", prompt)
	if err != nil || strings.TrimSpace(letter) == "" {
		g.warn(ctx, "cover letter", err)
		return "Dear Hiring Manager,\n\nI am excited to apply for this role. My background and skills align well with the position's requirements, and I am confident I can contribute from day one.\n\nI would welcome the opportunity to discuss how my experience fits your team's needs.\n\nSincerely,\n[Your Name]"
	}
	return strings.TrimSpace(letter)
}

// RoastResume gives blunt-but-constructive feedback on a resume.
func (g *Gateway) RoastResume(ctx context.Context, resume string) string {
	system := "You are a brutally honest but constructive resume reviewer. Be funny, never cruel, and end with concrete fixes."
	feedback, err := g.client.GenerateText(ctx, system, "Roast this resume:\n\n"+resume)
	if err != nil || strings.TrimSpace(feedback) == "" {
		g.warn(ctx, "resume roast", err)
		return "Your resume survived the roast because the grill is down for maintenance. " +
			"While it's offline: tighten your bullet points, lead with impact, and cut anything you couldn't defend in an interview."
	}
	return strings.TrimSpace(feedback)
}

// ===== HELPERS =====

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func (g *Gateway) warn(ctx context.Context, operation string, err error) {
	if g.logger == nil {
		return
	}
	g.logger.WarnContext(ctx, "ai gateway falling back to default",
		"operation", operation,
		"error", err)
}
