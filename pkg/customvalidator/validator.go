package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations đăng ký các rule riêng của hệ thống
// vào instance validator được truyền vào.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("branch_code", isBranchCode); err != nil {
		return err
	}
	if err := v.RegisterValidation("vso_format", isVSOFormat); err != nil {
		return err
	}
	if err := v.RegisterValidation("e164_VN", isVietnamPhoneNumber); err != nil {
		return err
	}

	return nil
}

var (
	branchCodeRegex = regexp.MustCompile(`^S\d{5}$`)
	vsoRegex        = regexp.MustCompile(`^S\d{5}-VSO-\d{2}-\d{2}-\d{4}$`)
	vnPhoneRegex    = regexp.MustCompile(`^(\+84|0)\d{9}$`)
)

// Mã DMS chi nhánh: S + 5 chữ số (vd S00901).
func isBranchCode(fl validator.FieldLevel) bool {
	return branchCodeRegex.MatchString(fl.Field().String())
}

func isVSOFormat(fl validator.FieldLevel) bool {
	return vsoRegex.MatchString(fl.Field().String())
}

func isVietnamPhoneNumber(fl validator.FieldLevel) bool {
	return vnPhoneRegex.MatchString(fl.Field().String())
}
