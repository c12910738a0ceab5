package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/gestorhq/gestor-be/types"
)

// Keyword families the heuristic analyzer tests for. Tuned for the
// Portuguese-language business documents the product handles.
var (
	projectKeywords  = []string{"projeto", "system", "desenvolvimento", "aplicação", "software"}
	budgetKeywords   = []string{"orçamento", "custo", "valor", "preço", "investimento"}
	timelineKeywords = []string{"prazo", "cronograma", "entrega", "milestone", "fase"}
)

const (
	fallbackBudgetWithFinancials = 150000
	fallbackBudgetDefault        = 100000
)

// FallbackAnalyzer synthesizes a schema-valid ExtractionResult from
// keyword presence alone. It performs no I/O, never fails, and is the
// availability fallback for the model-based extractor.
type FallbackAnalyzer struct {
	now func() time.Time
}

func NewFallbackAnalyzer() *FallbackAnalyzer {
	return &FallbackAnalyzer{now: time.Now}
}

func (a *FallbackAnalyzer) Analyze(text, fileName string) types.ExtractionResult {
	tokens := strings.Fields(strings.ToLower(text))
	tokenSet := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		tokenSet[tok] = struct{}{}
	}

	hasProject := containsAny(tokenSet, projectKeywords)
	hasBudget := containsAny(tokenSet, budgetKeywords)
	hasTimeline := containsAny(tokenSet, timelineKeywords)

	now := a.now()
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02")
	}

	projects := []types.ExtractedProject{}
	if hasProject {
		budget := float64(fallbackBudgetDefault)
		if hasBudget {
			budget = fallbackBudgetWithFinancials
		}
		projects = append(projects, types.ExtractedProject{
			Name:            fmt.Sprintf("Projeto extraído de %s", fileName),
			Description:     fmt.Sprintf("Projeto identificado automaticamente através de análise de texto. Detectadas %d palavras relevantes.", len(tokens)),
			Budget:          budget,
			StartDate:       day(0),
			ExpectedEndDate: day(90),
			Technologies:    []string{"React", "Node.js", "TypeScript"},
			Status:          types.ProjectStatusPlanning,
		})
	}

	tasks := []types.ExtractedTask{
		{
			Title:          "Análise de requisitos do documento",
			Description:    "Analisar e documentar todos os requisitos identificados no documento enviado.",
			Priority:       types.PriorityHigh,
			DueDate:        day(7),
			Tags:           []string{"análise", "documentação"},
			SuggestedOwner: "Analista responsável",
		},
		{
			Title:          "Planejamento inicial",
			Description:    "Estruturar plano de trabalho baseado no conteúdo do documento.",
			Priority:       types.PriorityMedium,
			DueDate:        day(14),
			Tags:           []string{"planejamento", "estruturação"},
			SuggestedOwner: "Gerente de projeto",
		},
	}

	timeline := []types.ExtractedEvent{
		{
			Title:       "Documento analisado",
			Description: fmt.Sprintf("Análise do documento %s concluída com sucesso.", fileName),
			Kind:        types.EventKindMilestone,
			Timestamp:   now.Format(time.RFC3339),
			Priority:    types.PriorityMedium,
		},
	}
	if hasTimeline {
		timeline = append(timeline, types.ExtractedEvent{
			Title:       "Revisão de cronograma",
			Description: "Cronograma identificado no documento precisa ser validado.",
			Kind:        types.EventKindDeadline,
			Timestamp:   now.AddDate(0, 0, 7).Format(time.RFC3339),
			Priority:    types.PriorityHigh,
		})
	}

	return types.ExtractionResult{
		Projects: projects,
		Tasks:    tasks,
		Timeline: timeline,
		Insights: a.buildInsights(fileName, len(tokens), hasProject, hasBudget, hasTimeline),
	}
}

func (a *FallbackAnalyzer) buildInsights(fileName string, tokenCount int, hasProject, hasBudget, hasTimeline bool) types.Insights {
	summary := fmt.Sprintf("Documento analisado: %s. Foram identificadas %d palavras.", fileName, tokenCount)
	if hasProject {
		summary += " Projeto detectado."
	} else {
		summary += " Conteúdo genérico."
	}
	if hasBudget {
		summary += " Informações financeiras presentes."
	}

	keyPoints := []string{
		pick(hasProject, "Documento contém informações de projeto", "Conteúdo textual padrão"),
		pick(hasBudget, "Aspectos financeiros mencionados", "Sem informações financeiras claras"),
		pick(hasTimeline, "Cronograma ou prazos identificados", "Sem cronograma específico"),
	}

	recommendations := []string{
		"Revisar conteúdo extraído manualmente",
		"Validar informações com stakeholders",
		pick(hasProject, "Iniciar planejamento de projeto", "Categorizar documento adequadamente"),
	}

	return types.Insights{
		Summary:           summary,
		KeyPoints:         keyPoints,
		Recommendations:   recommendations,
		EstimatedDuration: pick(hasProject, "2-3 meses", "1-2 semanas"),
		RiskFactors: []string{
			"Análise automática pode ter limitações",
			"Informações podem estar incompletas",
		},
	}
}

func containsAny(set map[string]struct{}, words []string) bool {
	for _, w := range words {
		if _, ok := set[w]; ok {
			return true
		}
	}
	return false
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
