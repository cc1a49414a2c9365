// Package saga 实现带补偿的多步骤执行
//
// 用于跨聚合的多步操作（如调拨审批：扣减厂商库存 → 增加经销商库存）：
// 1. 按顺序执行每个步骤的正向操作
// 2. 某步失败时，按逆序执行已完成步骤的补偿操作
// 3. 补偿操作必须幂等（允许重试）
package saga

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Step 表示一个步骤
// Action是正向操作（如扣减厂商库存），Compensate是补偿操作（如回补厂商库存）。
// 补偿只依赖自己Action的结果，不依赖后续步骤。
type Step struct {
	Name       string                          // 步骤名称（用于日志和调试）
	Action     func(ctx context.Context) error // 正向操作
	Compensate func(ctx context.Context) error // 补偿操作
}

// Saga 表示一次带补偿的多步骤执行
type Saga struct {
	steps    []Step        // 所有步骤
	executed []Step        // 已执行的步骤（用于补偿）
	timeout  time.Duration // 整体超时时间
}

// NewSaga 创建Saga
//
// 示例：
//
//	sg := saga.NewSaga(30 * time.Second)
//	sg.AddStep("扣减厂商库存", deductFactoryStock, restoreFactoryStock)
//	sg.AddStep("增加经销商库存", addDealerStock, removeDealerStock)
//	err := sg.Execute(ctx)
func NewSaga(timeout time.Duration) *Saga {
	return &Saga{
		steps:   make([]Step, 0),
		timeout: timeout,
	}
}

// AddStep 添加一个步骤
// 步骤按添加顺序执行，按逆序补偿；Action和Compensate都可以为nil
// （如最后一步通常无需补偿）。
func (s *Saga) AddStep(name string, action, compensate func(ctx context.Context) error) {
	s.steps = append(s.steps, Step{
		Name:       name,
		Action:     action,
		Compensate: compensate,
	})
}

// Execute 执行所有步骤
// 某步失败或整体超时时触发补偿流程并返回错误。
// Saga保证最终一致性而非强一致性：补偿期间数据可能处于中间状态。
func (s *Saga) Execute(ctx context.Context) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	for i, step := range s.steps {
		select {
		case <-ctx.Done():
			// 超时：用新Context补偿，避免补偿也被超时打断
			s.compensate(context.Background())
			return fmt.Errorf("saga超时: %w", ctx.Err())
		default:
		}

		// 执行正向操作
		if step.Action != nil {
			if err := step.Action(ctx); err != nil {
				s.compensate(context.Background())
				return fmt.Errorf("步骤[%d:%s]执行失败: %w", i, step.Name, err)
			}
		}

		// 记录已执行的步骤（用于补偿）
		s.executed = append(s.executed, step)
	}

	return nil
}

// compensate 按逆序执行已完成步骤的补偿
// 某个补偿失败时仍继续执行后续补偿（尽最大努力），
// 失败记录日志，需要人工介入或依赖上层重试。
func (s *Saga) compensate(ctx context.Context) {
	for i := len(s.executed) - 1; i >= 0; i-- {
		step := s.executed[i]

		if step.Compensate != nil {
			if err := step.Compensate(ctx); err != nil {
				log.Printf("saga补偿失败[步骤:%s]: %v", step.Name, err)
			}
		}
	}

	// 清空已执行列表
	s.executed = nil
}
