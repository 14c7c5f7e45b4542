package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("o e-mail já está cadastrado")
	ErrCPFAlreadyExists   = errors.New("o CPF já está cadastrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrConflict           = errors.New("conflito com o estado atual")
	ErrBaseInUse          = errors.New("a base possui guias de remessa vinculadas")
	ErrInvalidStatus      = errors.New("status inválido")
	ErrPhotoRequired      = errors.New("foto do serviço é obrigatória")
)
