package report

import (
	"context"
	"fmt"
	"strconv"

	"github.com/lucasmgo/frota-gr-api/internal/domain"
	"github.com/lucasmgo/frota-gr-api/internal/domain/entity"
	"github.com/lucasmgo/frota-gr-api/internal/domain/repairorder"
	"github.com/lucasmgo/frota-gr-api/internal/domain/repository"
)

// PDFUseCase gera o retrato imprimível de uma guia de remessa: cabeçalho,
// serviços ativos e os totais pela fórmula canônica.
type PDFUseCase struct {
	orderRepo repository.RepairOrderRepository
	svcRepo   repository.RepairOrderServiceRepository
	baseRepo  repository.BaseRepository
	itemRepo  repository.ServiceItemRepository
	userRepo  repository.UserRepository
	generator RepairOrderPDFGenerator
}

// NewPDFUseCase constrói o caso de uso injetando todas as dependências.
func NewPDFUseCase(
	orderRepo repository.RepairOrderRepository,
	svcRepo repository.RepairOrderServiceRepository,
	baseRepo repository.BaseRepository,
	itemRepo repository.ServiceItemRepository,
	userRepo repository.UserRepository,
	generator RepairOrderPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		orderRepo: orderRepo,
		svcRepo:   svcRepo,
		baseRepo:  baseRepo,
		itemRepo:  itemRepo,
		userRepo:  userRepo,
		generator: generator,
	}
}

// DownloadRepairOrderPDF carrega a guia completa e gera o PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  em caso de sucesso.
//   - domain.ErrNotFound         se a guia não existe.
func (uc *PDFUseCase) DownloadRepairOrderPDF(ctx context.Context, orderID string) (pdfBytes []byte, filename string, err error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obter guia: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}

	base, err := uc.baseRepo.GetByID(order.BaseID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obter base: %w", err)
	}
	if base == nil {
		return nil, "", domain.ErrNotFound
	}

	services, err := uc.svcRepo.ListByOrder(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obter serviços: %w", err)
	}

	// Enriquece cada linha com o nome do item de catálogo.
	enriched := make([]ServiceForPDF, 0, len(services))
	for _, s := range services {
		name := "Item " + s.ItemID // fallback
		if item, iErr := uc.itemRepo.GetByID(s.ItemID); iErr == nil && item != nil {
			name = item.Name
		}
		enriched = append(enriched, ServiceForPDF{
			RepairOrderService: *s,
			ItemName:           name,
		})
	}

	assigned := uc.loadUsers(order.UserIDs)
	totals := repairorder.Compute(services, order.Discount)

	pdfBytes, err = uc.generator.GenerateRepairOrderPDF(ctx, order, base, assigned, enriched, totals)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: geração falhou: %w", err)
	}

	filename = fmt.Sprintf("guia_%s.pdf", strconv.FormatInt(order.GCAF, 10))
	return pdfBytes, filename, nil
}

// loadUsers carrega o pessoal designado; IDs que não resolvem são ignorados
// (a guia imprime com os nomes disponíveis).
func (uc *PDFUseCase) loadUsers(ids []string) []*entity.User {
	users := make([]*entity.User, 0, len(ids))
	for _, id := range ids {
		if u, err := uc.userRepo.GetByID(id); err == nil && u != nil {
			users = append(users, u)
		}
	}
	return users
}
