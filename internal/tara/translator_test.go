package tara

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate_KnownCodes(t *testing.T) {
	known := map[string]string{
		"0":  "موفق",
		"1":  "درخواست از IP غیر مجاز",
		"2":  "نام کاربری یا رمز عبور نامعتبر است",
		"3":  "کاربر دسترسی ندارد",
		"4":  "پذیرنده یافت نشد",
		"5":  "هدایت به صفحه پرداخت",
		"6":  "تراکنش یافت نشد",
		"7":  "شماره سرویس نامعتبر است",
		"8":  "توکن تکراری است",
		"9":  "مبالغ یکسان نیست",
		"10": "کانال یافت نشد",
		"11": "مبلغ بیشتر از حد مجاز",
		"12": "مبلغ کمتر از حد مجاز",
		"13": "مبلغ نمی تواند خالی باشد",
		"14": "IP نمی تواد خالی باشد",
		"15": "مبلغ نامعتبر می باشد",
		"16": "لیست مبالغ سرویس خالی میباشد",
		"17": "شناسه سرویس نامعتبر",
		"18": "فرمت آدرس برگشتی صحیح نمی‌باشد",
		"19": "خطای عمومی",
		"20": "توکن یافت نشد",
		"21": "شماره پیگیری به پذیرنده تعلق ندارد",
		"22": "خطای عمومی",
		"23": "تراکنش اصلی موفق نبوده است",
	}

	for code, want := range known {
		assert.Equal(t, want, Translate(code, "fallback"), "code %s", code)
	}
}

func TestTranslate_UnknownCodesReturnFallback(t *testing.T) {
	for _, code := range []string{"99", "24", "-1", "", "abc", "00"} {
		assert.Equal(t, "fallback", Translate(code, "fallback"), "code %q", code)
	}
}

func TestTranslate_IsPure(t *testing.T) {
	first := Translate("8", "fallback")
	second := Translate("8", "fallback")
	assert.Equal(t, first, second)
}
