package order

import "context"

// Transactor 事务边界
// 由mysql.TxManager实现;单测用假实现直接执行fn
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher 领域事件发布
// 由pkg/mq.Publisher(经熔断器包装)实现;发布失败只记日志不影响主流程
type EventPublisher interface {
	Publish(routingKey string, message interface{}) error
}
