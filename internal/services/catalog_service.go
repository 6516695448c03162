package services

import (
	"context"
	"errors"

	"amc-backend/internal/cache"
	"amc-backend/internal/models"
	"amc-backend/internal/repositories"
)

// CatalogService covers brands, categories and products. The three move
// together: a product picks from the brand and category lists, and any
// mutation invalidates the shared option caches.
type CatalogService struct {
	Brands     *repositories.BrandRepository
	Categories *repositories.CategoryRepository
	Products   *repositories.ProductRepository
}

func NewCatalogService(brands *repositories.BrandRepository, categories *repositories.CategoryRepository, products *repositories.ProductRepository) *CatalogService {
	return &CatalogService{Brands: brands, Categories: categories, Products: products}
}

func (s *CatalogService) CreateBrand(ctx context.Context, req *models.CreateBrandRequest) (*models.Brand, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	b := &models.Brand{Name: req.Name, Details: req.Details, Status: defaultStatus(req.Status)}
	if err := s.Brands.Create(ctx, b); err != nil {
		return nil, err
	}
	cache.InvalidateCatalogCaches(ctx)
	return b, nil
}

func (s *CatalogService) GetBrand(ctx context.Context, id int) (*models.Brand, error) {
	return s.Brands.Get(ctx, id)
}

func (s *CatalogService) ListBrands(ctx context.Context, params models.ListParams) ([]*models.Brand, models.PaginationInfo, error) {
	brands, total, err := s.Brands.List(ctx, params)
	if err != nil {
		return nil, models.PaginationInfo{}, err
	}
	return brands, models.NewPaginationInfo(params.Page, params.Limit, total), nil
}

func (s *CatalogService) UpdateBrand(ctx context.Context, id int, req *models.UpdateBrandRequest) (*models.Brand, error) {
	b, err := s.Brands.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyString(&b.Name, req.Name)
	applyString(&b.Details, req.Details)
	applyString(&b.Status, req.Status)
	if b.Name == "" {
		return nil, errors.New("name is required")
	}
	if err := s.Brands.Update(ctx, b); err != nil {
		return nil, err
	}
	cache.InvalidateCatalogCaches(ctx)
	return b, nil
}

func (s *CatalogService) DeleteBrand(ctx context.Context, id int) error {
	if err := s.Brands.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateCatalogCaches(ctx)
	return nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	c := &models.Category{Name: req.Name, Details: req.Details, Status: defaultStatus(req.Status)}
	if err := s.Categories.Create(ctx, c); err != nil {
		return nil, err
	}
	cache.InvalidateCatalogCaches(ctx)
	return c, nil
}

func (s *CatalogService) GetCategory(ctx context.Context, id int) (*models.Category, error) {
	return s.Categories.Get(ctx, id)
}

func (s *CatalogService) ListCategories(ctx context.Context, params models.ListParams) ([]*models.Category, models.PaginationInfo, error) {
	categories, total, err := s.Categories.List(ctx, params)
	if err != nil {
		return nil, models.PaginationInfo{}, err
	}
	return categories, models.NewPaginationInfo(params.Page, params.Limit, total), nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id int, req *models.UpdateCategoryRequest) (*models.Category, error) {
	c, err := s.Categories.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyString(&c.Name, req.Name)
	applyString(&c.Details, req.Details)
	applyString(&c.Status, req.Status)
	if c.Name == "" {
		return nil, errors.New("name is required")
	}
	if err := s.Categories.Update(ctx, c); err != nil {
		return nil, err
	}
	cache.InvalidateCatalogCaches(ctx)
	return c, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id int) error {
	if err := s.Categories.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateCatalogCaches(ctx)
	return nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	if req.BrandID != nil {
		if _, err := s.Brands.Get(ctx, *req.BrandID); err != nil {
			return nil, errors.New("brand not found")
		}
	}
	if req.CategoryID != nil {
		if _, err := s.Categories.Get(ctx, *req.CategoryID); err != nil {
			return nil, errors.New("category not found")
		}
	}

	p := &models.Product{
		Name:       req.Name,
		BrandID:    req.BrandID,
		CategoryID: req.CategoryID,
		Model:      req.Model,
		Details:    req.Details,
		Status:     defaultStatus(req.Status),
	}
	if err := s.Products.Create(ctx, p); err != nil {
		return nil, err
	}
	cache.InvalidateCatalogCaches(ctx)
	return s.Products.Get(ctx, p.ID)
}

func (s *CatalogService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	return s.Products.Get(ctx, id)
}

func (s *CatalogService) ListProducts(ctx context.Context, params models.ListParams, brandID, categoryID int) ([]*models.Product, models.PaginationInfo, error) {
	products, total, err := s.Products.List(ctx, params, brandID, categoryID)
	if err != nil {
		return nil, models.PaginationInfo{}, err
	}
	return products, models.NewPaginationInfo(params.Page, params.Limit, total), nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id int, req *models.UpdateProductRequest) (*models.Product, error) {
	p, err := s.Products.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&p.Name, req.Name)
	applyString(&p.Model, req.Model)
	applyString(&p.Details, req.Details)
	applyString(&p.Status, req.Status)
	if req.BrandID != nil {
		p.BrandID = req.BrandID
	}
	if req.CategoryID != nil {
		p.CategoryID = req.CategoryID
	}

	if p.Name == "" {
		return nil, errors.New("name is required")
	}
	if req.BrandID != nil && *req.BrandID > 0 {
		if _, err := s.Brands.Get(ctx, *req.BrandID); err != nil {
			return nil, errors.New("brand not found")
		}
	}
	if req.CategoryID != nil && *req.CategoryID > 0 {
		if _, err := s.Categories.Get(ctx, *req.CategoryID); err != nil {
			return nil, errors.New("category not found")
		}
	}

	if err := s.Products.Update(ctx, p); err != nil {
		return nil, err
	}
	cache.InvalidateCatalogCaches(ctx)
	return s.Products.Get(ctx, id)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id int) error {
	if err := s.Products.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateCatalogCaches(ctx)
	return nil
}
