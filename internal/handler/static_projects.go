package handler

import (
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/model"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/store"
)

// fallbackProjects is the bundled catalog shown on the public site while
// the database holds no visible project yet. The entries go through the
// same localization path as stored projects.
var fallbackProjects = []store.Project{
	{
		ID:      "static-shop-bot",
		TitleEn: "Telegram shop bot",
		TitleRu: "Telegram-бот магазина",
		DescEn:  "Catalog, cart and payments inside Telegram for a local retailer.",
		DescRu:  "Каталог, корзина и оплата прямо в Telegram для локального ритейлера.",
		DetailsEn: "Full order flow with **CloudPayments** integration, " +
			"admin notifications and daily sales reports.",
		DetailsRu: "Полный цикл заказа с интеграцией **CloudPayments**, " +
			"уведомлениями администратору и ежедневными отчётами по продажам.",
		Tags:     model.EncodeTags([]string{"telegram", "payments"}),
		Price:    "from $500",
		Visible:  true,
		Position: 0,
	},
	{
		ID:      "static-booking-bot",
		TitleEn: "Appointment booking bot",
		TitleRu: "Бот записи на услуги",
		DescEn:  "Self-service booking with calendar sync and reminders.",
		DescRu:  "Самостоятельная запись с синхронизацией календаря и напоминаниями.",
		DetailsEn: "Slots are managed from a mini app; clients get reminders " +
			"24 hours and 1 hour before the visit.",
		DetailsRu: "Слоты настраиваются в мини-приложении; клиенты получают " +
			"напоминания за сутки и за час до визита.",
		Tags:     model.EncodeTags([]string{"telegram", "mini-app"}),
		Price:    "from $400",
		Visible:  true,
		Position: 1,
	},
	{
		ID:      "static-crm-integration",
		TitleEn: "CRM integration",
		TitleRu: "Интеграция с CRM",
		DescEn:  "Leads from Telegram land in the CRM automatically.",
		DescRu:  "Заявки из Telegram автоматически попадают в CRM.",
		DetailsEn: "Two-way sync of dialogue history and deal stages between " +
			"Telegram and amoCRM.",
		DetailsRu: "Двусторонняя синхронизация истории диалогов и этапов сделок " +
			"между Telegram и amoCRM.",
		Tags:     model.EncodeTags([]string{"integration", "crm"}),
		Price:    "from $300",
		Visible:  true,
		Position: 2,
	},
}
