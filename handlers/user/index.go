package UserHandler

import (
	TokenRepository "github.com/okanay/backend-translate-lingua/repositories/token"
	UserRepository "github.com/okanay/backend-translate-lingua/repositories/user"
)

type Handler struct {
	UserRepository  *UserRepository.Repository
	TokenRepository *TokenRepository.Repository
}

func NewHandler(ur *UserRepository.Repository, tr *TokenRepository.Repository) *Handler {
	return &Handler{
		UserRepository:  ur,
		TokenRepository: tr,
	}
}
