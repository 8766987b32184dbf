package presentation

const (
	AuthKey      = "Authorization"
	TypeKey      = "Content-Type"
	BearerPrefix = "Bearer "
	PathParam    = "*"
	IDParam      = "id"
)
