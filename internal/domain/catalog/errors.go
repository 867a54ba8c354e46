package catalog

import (
	apperrors "github.com/xiebiao/locallibrary/pkg/errors"
)

// 目录领域错误定义
var (
	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeNotFound, "作者不存在")

	// ErrGenreNotFound 体裁不存在
	ErrGenreNotFound = apperrors.New(apperrors.ErrCodeNotFound, "体裁不存在")

	// ErrLanguageNotFound 语种不存在
	ErrLanguageNotFound = apperrors.New(apperrors.ErrCodeNotFound, "语种不存在")

	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeNotFound, "图书不存在")

	// ErrInstanceNotFound 图书副本不存在
	ErrInstanceNotFound = apperrors.New(apperrors.ErrCodeNotFound, "图书副本不存在")

	// ErrInvalidInstanceID 副本标识格式非法
	// 注意：错误码为40400，对外表现与"副本不存在"一致，不暴露标识格式细节
	ErrInvalidInstanceID = apperrors.New(apperrors.ErrCodeNotFound, "副本标识格式非法")

	// ErrInvalidStatus 副本状态非法（必须是a/m/o/r之一）
	ErrInvalidStatus = apperrors.New(apperrors.ErrCodeInvalidParams, "副本状态非法（合法取值：a/m/o/r）")

	// ErrGenreNameDuplicate 体裁名称已存在
	ErrGenreNameDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "体裁名称已存在")

	// ErrLanguageNameDuplicate 语种名称已存在
	ErrLanguageNameDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "语种名称已存在")
)

// 关联记录解析失败错误
// 创建/更新时给定的关联ID必须指向已存在的记录，
// 失败时在错误消息中指明类别与具体ID，整个变更被拒绝。

// RelatedAuthorNotFound 关联的作者不存在
func RelatedAuthorNotFound(id uint) error {
	return apperrors.Newf(apperrors.ErrCodeRelatedMissing, "关联的作者(id=%d)不存在", id)
}

// RelatedLanguageNotFound 关联的语种不存在
func RelatedLanguageNotFound(id uint) error {
	return apperrors.Newf(apperrors.ErrCodeRelatedMissing, "关联的语种(id=%d)不存在", id)
}

// RelatedGenreNotFound 关联的体裁不存在
func RelatedGenreNotFound(id uint) error {
	return apperrors.Newf(apperrors.ErrCodeRelatedMissing, "关联的体裁(id=%d)不存在", id)
}

// RelatedBookNotFound 关联的图书不存在
func RelatedBookNotFound(id uint) error {
	return apperrors.Newf(apperrors.ErrCodeRelatedMissing, "关联的图书(id=%d)不存在", id)
}

// RelatedBorrowerNotFound 关联的借阅人不存在
func RelatedBorrowerNotFound(id uint) error {
	return apperrors.Newf(apperrors.ErrCodeRelatedMissing, "关联的借阅人(id=%d)不存在", id)
}
