package ports

// Logger define a interface para logging estruturado
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	With(args ...any) Logger
}

// ForOperation retorna um logger com o contexto mínimo para diagnosticar uma operação
// (tipo da entidade, ID e ação), sem depender do corpo da resposta.
func ForOperation(l Logger, entity, id, action string) Logger {
	return l.With("entity", entity, "entity_id", id, "action", action)
}
