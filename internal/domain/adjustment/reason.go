package adjustment

// Reason is the justification code recorded with an adjustment.
type Reason string

const (
	ReasonForgot            Reason = "ESQUECIMENTO"
	ReasonSystemUnavailable Reason = "SISTEMA_INDISPONIVEL"
	ReasonHoursCompensation Reason = "COMPENSACAO_DE_HORAS"
	ReasonMedicalCert       Reason = "ATESTADO_MEDICO"
	ReasonOther             Reason = "AJUSTE"
)

// Reasons lists every reason code in display order.
var Reasons = []Reason{
	ReasonForgot,
	ReasonSystemUnavailable,
	ReasonHoursCompensation,
	ReasonMedicalCert,
	ReasonOther,
}

var reasonLabels = map[Reason]string{
	ReasonForgot:            "Esquecimento",
	ReasonSystemUnavailable: "Sistema Indisponível",
	ReasonHoursCompensation: "Compensação de Horas",
	ReasonMedicalCert:       "Atestado Médico",
	ReasonOther:             "Outro Ajuste",
}

func (r Reason) IsValid() bool {
	_, ok := reasonLabels[r]
	return ok
}

// Label returns the display label, or the raw code when unknown.
func (r Reason) Label() string {
	if label, ok := reasonLabels[r]; ok {
		return label
	}
	return string(r)
}

func reasonCodes() []string {
	codes := make([]string, 0, len(Reasons))
	for _, r := range Reasons {
		codes = append(codes, string(r))
	}
	return codes
}
