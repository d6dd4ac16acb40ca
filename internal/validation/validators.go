// Package validation 领域字段校验：国民身份号校验和、手机号、密码策略、成绩范围。
package validation

import (
	"errors"
	"regexp"
	"unicode"

	"github.com/shopspring/decimal"
)

var (
	ErrNationalIDFormat   = errors.New("国民身份号必须为 10 位数字")
	ErrNationalIDChecksum = errors.New("国民身份号校验位不正确")
	ErrPhoneFormat        = errors.New("手机号必须为以 09 开头的 11 位数字")
	ErrGradeOutOfRange    = errors.New("成绩必须在 0 到 20 之间")
	ErrPasswordTooShort   = errors.New("密码长度不能少于 8 字符")
	ErrPasswordAllDigits  = errors.New("密码不能全部为数字")
)

var (
	nationalIDPattern = regexp.MustCompile(`^\d{10}$`)
	phonePattern      = regexp.MustCompile(`^09\d{9}$`)
)

// NationalID 按 mod-11 校验位规则校验 10 位国民身份号：
// 前 9 位的加权和（权重 10..2）对 11 取余 s，
// s < 2 时校验位须等于 s，否则校验位须等于 11 - s。
func NationalID(input string) error {
	if !nationalIDPattern.MatchString(input) {
		return ErrNationalIDFormat
	}

	controlDigit := int(input[9] - '0')
	s := 0
	for i := 0; i < 9; i++ {
		s += int(input[i]-'0') * (10 - i)
	}
	s %= 11

	if s < 2 {
		if controlDigit != s {
			return ErrNationalIDChecksum
		}
	} else if controlDigit+s != 11 {
		return ErrNationalIDChecksum
	}
	return nil
}

// Phone 校验手机号格式
func Phone(input string) error {
	if !phonePattern.MatchString(input) {
		return ErrPhoneFormat
	}
	return nil
}

var (
	gradeMin = decimal.Zero
	gradeMax = decimal.NewFromInt(20)
)

// Grade 校验成绩在闭区间 [0, 20] 内。
// 0 和 20 均合法；20.01 与 -0.01 均非法。
func Grade(input decimal.Decimal) error {
	if input.GreaterThan(gradeMax) || input.LessThan(gradeMin) {
		return ErrGradeOutOfRange
	}
	return nil
}

// Password 密码策略：至少 8 字符且不能全为数字
func Password(input string) error {
	if len(input) < 8 {
		return ErrPasswordTooShort
	}
	allDigits := true
	for _, r := range input {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return ErrPasswordAllDigits
	}
	return nil
}
