package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lucasmgo/frota-gr-api/internal/application/dto"
	"github.com/lucasmgo/frota-gr-api/internal/domain"
	"github.com/lucasmgo/frota-gr-api/internal/domain/entity"
	"github.com/lucasmgo/frota-gr-api/internal/domain/repository"
	"github.com/lucasmgo/frota-gr-api/pkg/cpf"
	"github.com/lucasmgo/frota-gr-api/pkg/jwt"
)

// birthDateLayout formato aceito para data de nascimento.
const birthDateLayout = "2006-01-02"

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: auto-cadastro e login.
// BcryptRounds vem de BCRYPT_ROUNDS (padrão 12).
type AuthUseCase struct {
	userRepo     repository.UserRepository
	jwtCfg       JWTConfig
	bcryptRounds int
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, bcryptRounds int) *AuthUseCase {
	if bcryptRounds <= 0 {
		bcryptRounds = 12
	}
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, bcryptRounds: bcryptRounds}
}

// Register cria um usuário pelo auto-cadastro: valida CPF pelo dígito
// verificador, garante unicidade de CPF e e-mail, hasheia a senha com bcrypt
// e persiste sempre com status PENDING (só um aprovador muda depois).
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if !entity.ValidUserType(in.Type) {
		return nil, fmt.Errorf("%w: tipo de usuário %q", domain.ErrInvalidInput, in.Type)
	}
	if err := cpf.Validate(in.CPF); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	birthDate, err := time.Parse(birthDateLayout, in.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("%w: data de nascimento deve estar em %s", domain.ErrInvalidInput, birthDateLayout)
	}

	// Pré-consultas de unicidade; a constraint do banco fica como rede de segurança.
	if existing, _ := uc.userRepo.GetByEmail(in.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if existing, _ := uc.userRepo.GetByCPF(in.CPF); existing != nil {
		return nil, domain.ErrCPFAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptRounds)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		CPF:          in.CPF,
		Email:        in.Email,
		PasswordHash: string(hash),
		Type:         in.Type,
		Status:       entity.UserStatusPending,
		BirthDate:    birthDate,
		Assistant:    in.Assistant,
		Observations: in.Observations,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica e-mail/senha e gera o JWT com id, nome, tipo e status.
// Usuários PENDING/REPROVED também recebem token: o gate de autorização usa o
// status do claim para decidir o redirecionamento.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, user.Type, user.Status, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ToUserResponse converte a entidade para o DTO de saída (sem password).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		CPF:          u.CPF,
		Email:        u.Email,
		Type:         u.Type,
		Status:       u.Status,
		BirthDate:    u.BirthDate.Format(birthDateLayout),
		Assistant:    u.Assistant,
		Observations: u.Observations,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
