package usecase

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lucasmgo/frota-gr-api/internal/application/auth"
	"github.com/lucasmgo/frota-gr-api/internal/application/dto"
	"github.com/lucasmgo/frota-gr-api/internal/domain"
	"github.com/lucasmgo/frota-gr-api/internal/domain/entity"
	"github.com/lucasmgo/frota-gr-api/internal/domain/repository"
)

// UserUseCase casos de uso administrativos de usuário: listagem, edição
// (inclusive a ação de aprovação via Status) e remoção. A criação passa pelo
// AuthUseCase.Register, que já força status PENDING.
type UserUseCase struct {
	userRepo     repository.UserRepository
	bcryptRounds int
}

// NewUserUseCase constrói o caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, bcryptRounds int) *UserUseCase {
	if bcryptRounds <= 0 {
		bcryptRounds = 12
	}
	return &UserUseCase{userRepo: userRepo, bcryptRounds: bcryptRounds}
}

// GetByID obtém um usuário por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return auth.ToUserResponse(user), nil
}

// List lista usuários com paginação.
func (uc *UserUseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update atualiza um usuário parcialmente. Status aqui é a ação de aprovação
// (PENDING -> APPROVED/REPROVED); o valor é validado contra o enum.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil && *in.Email != user.Email {
		if existing, _ := uc.userRepo.GetByEmail(*in.Email); existing != nil && existing.ID != id {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), uc.bcryptRounds)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Type != nil {
		if !entity.ValidUserType(*in.Type) {
			return nil, fmt.Errorf("%w: tipo de usuário %q", domain.ErrInvalidInput, *in.Type)
		}
		user.Type = *in.Type
	}
	if in.Status != nil {
		if !entity.ValidUserStatus(*in.Status) {
			return nil, fmt.Errorf("%w: status de usuário %q", domain.ErrInvalidStatus, *in.Status)
		}
		user.Status = *in.Status
	}
	if in.BirthDate != nil {
		birthDate, err := time.Parse("2006-01-02", *in.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("%w: data de nascimento inválida", domain.ErrInvalidInput)
		}
		user.BirthDate = birthDate
	}
	if in.Assistant != nil {
		user.Assistant = *in.Assistant
	}
	if in.Observations != nil {
		user.Observations = *in.Observations
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete remove um usuário por ID.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.userRepo.Delete(id)
}
