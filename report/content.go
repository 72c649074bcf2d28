package report

import (
	"fmt"

	"pzg/document"
)

// Compose appends the complete explanatory note to the composer in reading
// order: title page, table of contents, introduction, four numbered
// sections, conclusion and the reference list, each starting a new page.
func Compose(c *document.Composer, meta document.Metadata) error {
	titlePage(c, meta)
	c.AppendPageBreak()

	tableOfContents(c)
	c.AppendPageBreak()

	introduction(c)
	c.AppendPageBreak()

	domainAnalysis(c)
	c.AppendPageBreak()

	architectureDesign(c)
	c.AppendPageBreak()

	integrationDevelopment(c)
	c.AppendPageBreak()

	if err := implementationAndTesting(c); err != nil {
		return err
	}
	c.AppendPageBreak()

	conclusion(c)
	c.AppendPageBreak()

	referenceList(c)
	return nil
}

func blankLines(c *document.Composer, n int) {
	for i := 0; i < n; i++ {
		c.AppendParagraph("", false, false)
	}
}

func titlePage(c *document.Composer, meta document.Metadata) {
	c.AppendCentered("Министерство науки и высшего образования Российской Федерации", false)
	c.AppendCentered("Федеральное государственное автономное образовательное учреждение высшего образования", false)
	c.AppendCentered("«МОСКОВСКИЙ ПОЛИТЕХНИЧЕСКИЙ УНИВЕРСИТЕТ»", false)
	c.AppendCentered("(МОСКОВСКИЙ ПОЛИТЕХ)", false)

	blankLines(c, 5)

	c.AppendCentered("КУРСОВОЙ ПРОЕКТ", false)
	c.AppendCentered("по теме:", false)
	c.AppendCentered(meta.Topic, true)

	blankLines(c, 1)

	c.AppendCentered("по курсу Проектирование интеграционных решений", false)

	blankLines(c, 1)

	c.AppendCentered("по направлению 09.03.03 – Прикладная информатика", false)
	c.AppendCentered("Образовательная программа (профиль)", false)
	c.AppendCentered("«Корпоративные информационные системы»", false)

	blankLines(c, 4)

	c.AppendParagraph(fmt.Sprintf("Студент:\t\t\t\t\t\t\t\t\t%s, %s", meta.StudentName, meta.Group), false, false)
	blankLines(c, 1)
	c.AppendParagraph(fmt.Sprintf("Преподаватель:\t\t\t\t\t\t\t\t%s", meta.TeacherName), false, false)

	blankLines(c, 8)

	c.AppendCentered("Москва "+meta.Year, false)
}

func tableOfContents(c *document.Composer) {
	c.AppendHeading(1, "Содержание")

	entries := []struct{ title, page string }{
		{"ВВЕДЕНИЕ", "3"},
		{"1 АНАЛИЗ ПРЕДМЕТНОЙ ОБЛАСТИ", "5"},
		{"1.1 Описание бизнес-процесса", "5"},
		{"1.2 Выявление потоков данных", "7"},
		{"1.3 Концептуальная модель данных", "8"},
		{"2 ПРОЕКТИРОВАНИЕ АРХИТЕКТУРЫ", "10"},
		{"2.1 Выбор шаблона интеграции", "10"},
		{"2.2 Логическая архитектура решения", "11"},
		{"2.3 Выбор технологий и инструментов", "13"},
		{"3 РАЗРАБОТКА ИНТЕГРАЦИОННОГО РЕШЕНИЯ", "15"},
		{"3.1 Схема обмена данными", "15"},
		{"3.2 Контракты сообщений", "16"},
		{"3.3 Обработка ошибок", "18"},
		{"4 РЕАЛИЗАЦИЯ И ТЕСТИРОВАНИЕ", "19"},
		{"4.1 Реализация прототипа", "19"},
		{"4.2 Тестирование", "21"},
		{"ЗАКЛЮЧЕНИЕ", "23"},
		{"СПИСОК ИСПОЛЬЗОВАННЫХ ИСТОЧНИКОВ", "24"},
	}
	for _, e := range entries {
		c.AppendTOCEntry(e.title, e.page)
	}
}
