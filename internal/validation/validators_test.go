package validation

import (
	"testing"

	"github.com/shopspring/decimal"
)

// validNationalID 构造一个校验位正确的身份号用于测试
// 0499370899: 加权和 = 0*10+4*9+9*8+9*7+3*6+7*5+0*4+8*3+9*2 = 266, 266%11=2, 11-2=9 ✓
const validNationalID = "0499370899"

func TestNationalID_Valid(t *testing.T) {
	if err := NationalID(validNationalID); err != nil {
		t.Errorf("合法身份号不应报错: %v", err)
	}
}

func TestNationalID_BadFormat(t *testing.T) {
	for _, input := range []string{"", "123", "12345678901", "04993708a9"} {
		if err := NationalID(input); err != ErrNationalIDFormat {
			t.Errorf("输入 %q 期望 ErrNationalIDFormat，实际: %v", input, err)
		}
	}
}

func TestNationalID_BadChecksum(t *testing.T) {
	// 校验位改为错误值
	if err := NationalID("0499370898"); err != ErrNationalIDChecksum {
		t.Errorf("期望 ErrNationalIDChecksum，实际: %v", err)
	}
}

func TestPhone(t *testing.T) {
	if err := Phone("09123456789"); err != nil {
		t.Errorf("合法手机号不应报错: %v", err)
	}
	for _, input := range []string{"0912345678", "091234567890", "08123456789", "9123456789"} {
		if err := Phone(input); err != ErrPhoneFormat {
			t.Errorf("输入 %q 期望 ErrPhoneFormat，实际: %v", input, err)
		}
	}
}

func TestGrade_Boundaries(t *testing.T) {
	// 0 和 20 恰好合法
	if err := Grade(decimal.Zero); err != nil {
		t.Errorf("成绩 0 应合法: %v", err)
	}
	if err := Grade(decimal.NewFromInt(20)); err != nil {
		t.Errorf("成绩 20 应合法: %v", err)
	}

	// 20.01 和 -0.01 越界
	if err := Grade(decimal.RequireFromString("20.01")); err != ErrGradeOutOfRange {
		t.Errorf("成绩 20.01 期望 ErrGradeOutOfRange，实际: %v", err)
	}
	if err := Grade(decimal.RequireFromString("-0.01")); err != ErrGradeOutOfRange {
		t.Errorf("成绩 -0.01 期望 ErrGradeOutOfRange，实际: %v", err)
	}
}

func TestGrade_Midrange(t *testing.T) {
	if err := Grade(decimal.RequireFromString("18.50")); err != nil {
		t.Errorf("成绩 18.50 应合法: %v", err)
	}
}

func TestPassword(t *testing.T) {
	if err := Password("abc12345"); err != nil {
		t.Errorf("合法密码不应报错: %v", err)
	}
	if err := Password("short1"); err != ErrPasswordTooShort {
		t.Errorf("期望 ErrPasswordTooShort，实际: %v", err)
	}
	if err := Password("12345678"); err != ErrPasswordAllDigits {
		t.Errorf("期望 ErrPasswordAllDigits，实际: %v", err)
	}
}
