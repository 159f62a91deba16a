package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/martinsuhendra/manta-sub002/pkg/store"
)

// TemplateRepository keeps session templates in process memory.
type TemplateRepository struct {
	cache *cache.Cache
}

func NewTemplateRepository() *TemplateRepository {
	// Templates never expire on their own; the store is cleared on restart.
	c := cache.New(cache.NoExpiration, 10*time.Minute)
	return &TemplateRepository{
		cache: c,
	}
}

func (r *TemplateRepository) Save(template *store.SessionTemplate) {
	r.cache.Set(template.ID, template, cache.NoExpiration)
}

func (r *TemplateRepository) Get(id string) (*store.SessionTemplate, bool) {
	if x, found := r.cache.Get(id); found {
		return x.(*store.SessionTemplate), true
	}
	return nil, false
}

func (r *TemplateRepository) List() []*store.SessionTemplate {
	items := r.cache.Items()
	templates := make([]*store.SessionTemplate, 0, len(items))
	for _, item := range items {
		templates = append(templates, item.Object.(*store.SessionTemplate))
	}
	return templates
}

func (r *TemplateRepository) Delete(id string) {
	r.cache.Delete(id)
}
