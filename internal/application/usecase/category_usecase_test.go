package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeAlexBV/warehouse-api/internal/application/dto"
	"github.com/JoeAlexBV/warehouse-api/internal/application/usecase"
	"github.com/JoeAlexBV/warehouse-api/internal/domain"
)

func TestCreateCategory_NombreDuplicado(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Ferretería"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Ferretería"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateCategory_NombreVacio(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateCategory_NombreDuplicado(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Ferretería"})
	require.NoError(t, err)
	otra, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Electricidad"})
	require.NoError(t, err)

	ocupado := "Ferretería"
	_, err = uc.Update(context.Background(), otra.ID, dto.UpdateCategoryRequest{Name: &ocupado})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUpdateCategory_MismoNombreNoEsDuplicado(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	created, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Ferretería"})
	require.NoError(t, err)

	mismo := "Ferretería"
	descripcion := "tornillería y herrajes"
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateCategoryRequest{
		Name:        &mismo,
		Description: &descripcion,
	})
	require.NoError(t, err, "conservar el propio nombre no debe chocar con la unicidad")
	assert.Equal(t, "tornillería y herrajes", out.Description)
}

func TestDeleteCategory_NoExiste(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetCategory_NoExiste_DevuelveNil(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	out, err := uc.GetByID(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}
