// Package i18n holds the two-locale UI string tables. Lookup falls back
// to English, then to the key itself, so a missing translation degrades
// visibly instead of breaking a view.
package i18n

// Supported locales.
const (
	VI = "vi"
	EN = "en"
)

var messages = map[string]map[string]string{
	VI: {
		"seat.booked":           "Đã đặt",
		"seat.available":        "Trống",
		"seat.selected":         "Đang chọn",
		"seat.chosen_count":     "Đã chọn",
		"booking.total":         "Tổng tiền",
		"booking.total_due":     "Tổng tiền cần thanh toán",
		"booking.route":         "Tuyến",
		"booking.coach":         "Xe",
		"booking.departure":     "Ngày giờ đi",
		"booking.seats":         "Ghế",
		"payment.unpaid":        "Chưa thanh toán",
		"payment.paid":          "Đã thanh toán",
		"payment.cancel":        "Đã hủy vé",
		"payment.refunded":      "Đã hoàn tiền",
		"payment.created":       "Tạo mới",
		"points.balance":        "Số điểm xu của bạn",
		"points.invalid":        "Số điểm không hợp lệ hoặc vượt quá số điểm có thể sử dụng.",
		"phone.invalid":         "Số điện thoại không hợp lệ",
		"search.no_result":      "Không có kết quả",
		"payment.method_needed": "Vui lòng chọn phương thức thanh toán.",
	},
	EN: {
		"seat.booked":           "Booked",
		"seat.available":        "Available",
		"seat.selected":         "Selecting",
		"seat.chosen_count":     "Selected",
		"booking.total":         "Total",
		"booking.total_due":     "Total due",
		"booking.route":         "Route",
		"booking.coach":         "Coach",
		"booking.departure":     "Departure",
		"booking.seats":         "Seats",
		"payment.unpaid":        "Unpaid",
		"payment.paid":          "Paid",
		"payment.cancel":        "Canceled",
		"payment.refunded":      "Refunded",
		"payment.created":       "Created",
		"points.balance":        "Your point balance",
		"points.invalid":        "Point amount is invalid or exceeds the usable balance.",
		"phone.invalid":         "Invalid phone number",
		"search.no_result":      "No results",
		"payment.method_needed": "Please choose a payment method.",
	},
}

// T resolves a message key for a locale.
func T(locale, key string) string {
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[EN][key]; ok {
		return msg
	}
	return key
}

// Table returns a copy of a locale's full message table.
func Table(locale string) map[string]string {
	table, ok := messages[locale]
	if !ok {
		table = messages[EN]
	}
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}

// Locales returns the supported locale codes.
func Locales() []string {
	return []string{VI, EN}
}
