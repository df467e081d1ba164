// Package rule 基于 go-playground/validator 封装 "rule" tag 的校验入口，
// 供配置加载（configs 结构体上的 rule tag）和请求处理（用户标识等单值校验）使用.
package rule

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	inst *validator.Validate
	once sync.Once
)

// initValidator 优先复用 gin binding 的 validator 引擎，保证 binding tag 和
// rule tag 共享同一份自定义校验注册；引擎不可用时退回独立实例.
func initValidator() {
	if engine := binding.Validator.Engine(); engine != nil {
		if v, ok := engine.(*validator.Validate); ok {
			inst = v
			inst.SetTagName("rule")

			return
		}
	}

	inst = validator.New()
	inst.SetTagName("rule")
}

// lazyInit 初始化全局 validator（幂等）.
func lazyInit() {
	once.Do(initValidator)
}

// Engine 返回全局 *validator.Validate，若未初始化则先初始化.
func Engine() *validator.Validate {
	lazyInit()

	return inst
}

// RegisterValidation 注册自定义校验函数到全局实例.
func RegisterValidation(tag string, fn validator.Func, opts ...bool) error {
	lazyInit()

	return inst.RegisterValidation(tag, fn, opts...)
}

// Validate 按结构体字段上的 rule tag 执行完整校验，嵌套结构体递归校验.
func Validate(s any) error {
	lazyInit()

	return inst.Struct(s)
}

// ValidateVar 按规则对单个变量校验，例如: ValidateVar(uid, "required,max=128").
func ValidateVar(field any, tag string) error {
	lazyInit()

	return inst.Var(field, tag)
}
