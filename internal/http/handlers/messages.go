package handlers

// Response texts. Existing clients match on these strings, so they keep the
// wording of the first release.
const (
	msgApplianceNotFound = "Eletrônico não encontrado!"
	msgApplianceUpdated  = "Eletrônico atualizado com sucesso!"
	msgApplianceDeleted  = "Eletrônico removido com sucesso!"

	msgUserExists     = "Usuário já registrado"
	msgUserRegistered = "Usuário registrado com sucesso"
	msgRegisterFailed = "Erro no registro de usuário"
	msgUserNotFound   = "Usuário não encontrado"
	msgWrongPassword  = "Senha incorreta"
	msgLoginFailed    = "Erro no login de usuário"

	msgInvalidJSON = "invalid JSON payload"
	msgInternal    = "internal error"
)
