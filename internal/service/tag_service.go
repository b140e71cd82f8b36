package service

import (
	"github.com/inkpress/inkpress/internal/models"
	"github.com/inkpress/inkpress/internal/repository"
)

// TagService 标签管理。标签不单独创建，随文章写入按需产生。
type TagService struct {
	tags repository.TagRepository
}

func NewTagService(tags repository.TagRepository) *TagService {
	return &TagService{tags: tags}
}

func (s *TagService) List() ([]repository.TagWithCount, error) {
	return s.tags.List()
}

func (s *TagService) GetByName(name string) (*models.Tag, error) {
	tag, err := s.tags.GetByName(name)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, ErrNotFound
	}
	return tag, nil
}

// Delete 删除标签并解除全部文章关联，返回被解除关联的文章数
func (s *TagService) Delete(id uint) (int64, error) {
	tag, err := s.tags.GetByID(id)
	if err != nil {
		return 0, err
	}
	if tag == nil {
		return 0, ErrNotFound
	}
	return s.tags.DeleteWithLinks(id)
}
