package services

import "errors"

// 表格访问错误分类，调用方用 errors.Is 区分
var (
	ErrAuth   = errors.New("凭证无效或解析失败")
	ErrLookup = errors.New("查找表格失败")
	ErrCreate = errors.New("创建表格失败")
	ErrAppend = errors.New("追加行失败")
	ErrRead   = errors.New("读取表格失败")
)
