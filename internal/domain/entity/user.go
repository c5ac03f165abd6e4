package entity

// Roles válidos en el claim role del token emitido por el servicio de auth.
const (
	RoleAdmin      = "admin"
	RoleFinanceiro = "financeiro"
	RoleConsultor  = "consultor"
)

// Principal identidad del usuario que actúa, tomada del token (no se persiste aquí).
type Principal struct {
	UserID    string
	CompanyID string
	Role      string // admin, financeiro, consultor
}
