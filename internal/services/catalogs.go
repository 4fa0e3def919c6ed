package services

import "github.com/velmora/aetheria/internal/models"

// Fixed content catalogs for the deterministic generator. The prediction body
// is two parts joined by a blank line; the second part is always advice.

var predictionTemplates = []string{
	"Сегодня звёзды складываются в вашу пользу, но не сразу. Первая половина дня потребует терпения: кто-то из окружения попытается перетянуть ваше внимание на себя.\n\nСовет: отложите важный разговор на вечер — после заката ваши слова обретут вес.",
	"Вы давно носите в себе вопрос, который боитесь задать вслух. Сегодня вселенная подталкивает вас к ответу через случайную встречу или забытое сообщение.\n\nСовет: перечитайте то, что писали неделю назад. Там уже есть подсказка.",
	"День двойственный: внешне спокойный, внутри — напряжённый. Ваша интуиция сегодня острее обычного, и это не совпадение.\n\nСовет: если сомневаетесь между «да» и «нет», выберите то, что страшнее. Страх указывает на рост.",
	"Кто-то из прошлого думает о вас чаще, чем вы предполагаете. Эта энергия сегодня окрашивает ваши решения, даже мелкие.\n\nСовет: не принимайте финансовых решений до полудня.",
	"Сегодня благоприятны начинания, связанные с домом и близкими. Рабочие амбиции подождут — сейчас звёзды закрывают эту дверь, чтобы открыть другую.\n\nСовет: один маленький порядок наведённый сегодня, сбережёт большую энергию завтра.",
	"Утро принесёт лёгкое раздражение, день — неожиданную похвалу, вечер — ясность. Не спешите делать выводы до темноты.\n\nСовет: запишите три вещи, за которые благодарны. Это сместит поток в вашу сторону.",
	"Ваша энергия сегодня притягивает людей, но не все из них приходят с чистыми намерениями. Различайте интерес и корысть.\n\nСовет: не делитесь планами, пока они не окрепли. Сказанное вслух сегодня легко сглазить.",
	"Период застоя подходит к концу. Сегодня возможен знак — число, имя или место, которое повторится дважды. Не отмахивайтесь от него.\n\nСовет: вечером побудьте десять минут в тишине. Ответ придёт сам.",
	"Сегодня день закрытия долгов — не только денежных. Верните обещанное, договорите недосказанное, и колесо повернётся.\n\nСовет: первый шаг к примирению засчитывается вдвойне.",
	"Звёзды сегодня испытывают вашу гибкость: планы будут меняться, и это к лучшему. То, что сорвётся, сорвётся вовремя.\n\nСовет: оставьте в расписании пустой час. Он заполнится чем-то важным.",
}

type mysticColor struct {
	Name string
	Hex  string
}

var mysticColors = []mysticColor{
	{Name: "Аметистовый", Hex: "#9966CC"},
	{Name: "Полночный синий", Hex: "#191970"},
	{Name: "Изумрудный", Hex: "#50C878"},
	{Name: "Лунное серебро", Hex: "#C0C0C0"},
	{Name: "Гранатовый", Hex: "#7B1E3B"},
	{Name: "Золото заката", Hex: "#D4A017"},
	{Name: "Туманная лаванда", Hex: "#B57EDC"},
	{Name: "Глубокий бирюзовый", Hex: "#00777B"},
	{Name: "Индиго", Hex: "#4B0082"},
}

var tarotCards = []models.TarotCard{
	{Name: "Звезда", Meaning: "Надежда и обновление. Раны затягиваются, путь проясняется.", Icon: "⭐"},
	{Name: "Луна", Meaning: "Иллюзии и интуиция. Не всё, что видите, правда — доверяйте чутью.", Icon: "🌙"},
	{Name: "Солнце", Meaning: "Ясность и успех. День, когда усилия становятся видимыми.", Icon: "☀️"},
	{Name: "Колесо Фортуны", Meaning: "Поворот судьбы. Цикл завершается, начинается новый.", Icon: "🎡"},
	{Name: "Маг", Meaning: "Сила воли. У вас уже есть всё, что нужно для первого шага.", Icon: "🪄"},
	{Name: "Верховная Жрица", Meaning: "Тайное знание. Ответ внутри, а не снаружи.", Icon: "🔮"},
	{Name: "Влюблённые", Meaning: "Выбор сердца. Решение, принятое сегодня, определит многое.", Icon: "💞"},
	{Name: "Отшельник", Meaning: "Уединение и поиск. Отойдите от шума, чтобы услышать себя.", Icon: "🏮"},
	{Name: "Сила", Meaning: "Мягкая власть. Терпение сегодня сильнее напора.", Icon: "🦁"},
	{Name: "Императрица", Meaning: "Изобилие и забота. Вложенное в близких вернётся сторицей.", Icon: "👑"},
	{Name: "Башня", Meaning: "Внезапная перемена. Рушится только то, что стояло на лжи.", Icon: "🗼"},
	{Name: "Мир", Meaning: "Завершение круга. Долгий этап подходит к гармоничному финалу.", Icon: "🌍"},
}

var teasers = []string{
	"⚠️ Предупреждение: возможен обман",
	"💰 Финансовый знак уже рядом",
	"❤️ Кто-то думает о вас прямо сейчас",
	"🔥 День скрытого шанса",
	"🌑 Тень из прошлого напомнит о себе",
	"✨ Редкое сочетание звёзд в вашу пользу",
	"🗝 Сегодня откроется то, что было заперто",
	"⏳ Время решения на исходе",
}
