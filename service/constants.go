package service

const (
	// Criterios estándar de aprobación
	DefaultDTIApprovalMax    = 0.30 // 30% debt-to-income
	DefaultDTIConditionalMax = 0.35 // DTI elevado tolerable con buen score
	DefaultMinCreditScore    = 650
	DefaultConditionalScore  = 620 // score mínimo con DTI bajo

	// Umbral de riesgo extremo
	DefaultExtremeDTI = 0.40

	// Rango válido de score FICO
	MinValidCreditScore = 300
	MaxValidCreditScore = 850

	// Heurísticas de sesgo
	DefaultYoungApplicantAge  = 35
	DefaultLowIncomeCutoff    = 50000.0
	DefaultAdvisoryScoreFloor = 580 // inicio de la banda Fair
)

// Thresholds holds every tunable cutoff the engine consults. The engine
// ships with industry-standard defaults; overriding them is a wiring-time
// configuration concern, never something the core reads on its own.
type Thresholds struct {
	DTIApprovalMax    float64
	DTIConditionalMax float64
	MinCreditScore    int
	ConditionalScore  int
	ExtremeDTI        float64

	YoungApplicantAge  int
	LowIncomeCutoff    float64
	AdvisoryScoreFloor int
}

// DefaultThresholds returns the standard lending criteria.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DTIApprovalMax:     DefaultDTIApprovalMax,
		DTIConditionalMax:  DefaultDTIConditionalMax,
		MinCreditScore:     DefaultMinCreditScore,
		ConditionalScore:   DefaultConditionalScore,
		ExtremeDTI:         DefaultExtremeDTI,
		YoungApplicantAge:  DefaultYoungApplicantAge,
		LowIncomeCutoff:    DefaultLowIncomeCutoff,
		AdvisoryScoreFloor: DefaultAdvisoryScoreFloor,
	}
}
