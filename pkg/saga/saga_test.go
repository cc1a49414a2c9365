package saga

import (
	"context"
	"errors"
	"testing"
	"time"
)

// TestSaga_Execute_Success 测试所有步骤成功的场景
func TestSaga_Execute_Success(t *testing.T) {
	executed := make([]string, 0)

	sg := NewSaga(5 * time.Second)

	sg.AddStep("扣减厂商库存",
		func(ctx context.Context) error {
			executed = append(executed, "扣减厂商库存")
			return nil
		},
		func(ctx context.Context) error {
			executed = append(executed, "回补厂商库存")
			return nil
		},
	)

	sg.AddStep("增加经销商库存",
		func(ctx context.Context) error {
			executed = append(executed, "增加经销商库存")
			return nil
		},
		func(ctx context.Context) error {
			executed = append(executed, "扣回经销商库存")
			return nil
		},
	)

	err := sg.Execute(context.Background())
	if err != nil {
		t.Fatalf("Saga执行失败: %v", err)
	}

	// 验证只执行了正向操作且顺序正确
	if len(executed) != 2 {
		t.Errorf("期望执行2个步骤，实际执行%d个", len(executed))
	}
	if executed[0] != "扣减厂商库存" || executed[1] != "增加经销商库存" {
		t.Errorf("执行顺序错误: %v", executed)
	}
}

// TestSaga_Execute_FailureAndCompensate 测试步骤失败触发逆序补偿
func TestSaga_Execute_FailureAndCompensate(t *testing.T) {
	executed := make([]string, 0)

	sg := NewSaga(5 * time.Second)

	sg.AddStep("扣减厂商库存",
		func(ctx context.Context) error {
			executed = append(executed, "扣减厂商库存")
			return nil
		},
		func(ctx context.Context) error {
			executed = append(executed, "回补厂商库存")
			return nil
		},
	)

	sg.AddStep("增加经销商库存",
		func(ctx context.Context) error {
			return errors.New("经销商库存行写入失败")
		},
		func(ctx context.Context) error {
			executed = append(executed, "扣回经销商库存")
			return nil
		},
	)

	err := sg.Execute(context.Background())
	if err == nil {
		t.Fatal("期望Saga失败，实际成功")
	}

	// 第二步未成功执行，不应补偿第二步；第一步应被补偿
	want := []string{"扣减厂商库存", "回补厂商库存"}
	if len(executed) != len(want) {
		t.Fatalf("执行轨迹错误: %v", executed)
	}
	for i := range want {
		if executed[i] != want[i] {
			t.Errorf("执行轨迹[%d]错误: 期望%s, 实际%s", i, want[i], executed[i])
		}
	}
}

// TestSaga_CompensateFailureContinues 测试补偿失败时仍继续后续补偿
func TestSaga_CompensateFailureContinues(t *testing.T) {
	compensated := make([]string, 0)

	sg := NewSaga(5 * time.Second)

	sg.AddStep("步骤A",
		func(ctx context.Context) error { return nil },
		func(ctx context.Context) error {
			compensated = append(compensated, "A")
			return nil
		},
	)
	sg.AddStep("步骤B",
		func(ctx context.Context) error { return nil },
		func(ctx context.Context) error {
			compensated = append(compensated, "B")
			return errors.New("补偿B失败")
		},
	)
	sg.AddStep("步骤C",
		func(ctx context.Context) error { return errors.New("C执行失败") },
		nil,
	)

	err := sg.Execute(context.Background())
	if err == nil {
		t.Fatal("期望Saga失败，实际成功")
	}

	// B补偿失败不应阻断A的补偿，且补偿为逆序
	if len(compensated) != 2 || compensated[0] != "B" || compensated[1] != "A" {
		t.Errorf("补偿轨迹错误: %v", compensated)
	}
}
