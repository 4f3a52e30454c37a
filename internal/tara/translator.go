package tara

// SuccessResult is the gateway's sole success sentinel. Every other result
// code is a failure, whether or not Translate recognizes it.
const SuccessResult = "0"

// Translate maps a Tara result code to its documented Persian description.
// Unknown codes return fallback verbatim. The table mirrors the gateway
// documentation and is the single source of merchant-facing failure text;
// treat it as a fixed contract.
func Translate(code, fallback string) string {
	switch code {
	case "0":
		return "موفق"
	case "1":
		return "درخواست از IP غیر مجاز"
	case "2":
		return "نام کاربری یا رمز عبور نامعتبر است"
	case "3":
		return "کاربر دسترسی ندارد"
	case "4":
		return "پذیرنده یافت نشد"
	case "5":
		return "هدایت به صفحه پرداخت"
	case "6":
		return "تراکنش یافت نشد"
	case "7":
		return "شماره سرویس نامعتبر است"
	case "8":
		return "توکن تکراری است"
	case "9":
		return "مبالغ یکسان نیست"
	case "10":
		return "کانال یافت نشد"
	case "11":
		return "مبلغ بیشتر از حد مجاز"
	case "12":
		return "مبلغ کمتر از حد مجاز"
	case "13":
		return "مبلغ نمی تواند خالی باشد"
	case "14":
		return "IP نمی تواد خالی باشد"
	case "15":
		return "مبلغ نامعتبر می باشد"
	case "16":
		return "لیست مبالغ سرویس خالی میباشد"
	case "17":
		return "شناسه سرویس نامعتبر"
	case "18":
		return "فرمت آدرس برگشتی صحیح نمی‌باشد"
	case "19":
		return "خطای عمومی"
	case "20":
		return "توکن یافت نشد"
	case "21":
		return "شماره پیگیری به پذیرنده تعلق ندارد"
	case "22":
		return "خطای عمومی"
	case "23":
		return "تراکنش اصلی موفق نبوده است"
	default:
		return fallback
	}
}
