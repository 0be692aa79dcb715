package ingest

// Имена шести полей кандидата. Совпадают с заголовками колонок
// в загружаемых файлах и с ключами JSON inline-массива.
const (
	FieldQuestionText  = "question_text"
	FieldOption1       = "option_1"
	FieldOption2       = "option_2"
	FieldOption3       = "option_3"
	FieldOption4       = "option_4"
	FieldCorrectAnswer = "correct_answer"
)

// RecordFields - все поля кандидата в каноническом порядке
var RecordFields = []string{
	FieldQuestionText,
	FieldOption1,
	FieldOption2,
	FieldOption3,
	FieldOption4,
	FieldCorrectAnswer,
}

// QuestionRecord - невалидированный кандидат вопроса, извлеченный из
// какого-либо источника. Идентичности еще не имеет; значения полей
// могут быть пустыми строками.
type QuestionRecord struct {
	QuestionText  string `json:"question_text"`
	Option1       string `json:"option_1"`
	Option2       string `json:"option_2"`
	Option3       string `json:"option_3"`
	Option4       string `json:"option_4"`
	CorrectAnswer string `json:"correct_answer"`
}

// values возвращает значения полей в порядке RecordFields
func (r QuestionRecord) values() []string {
	return []string{r.QuestionText, r.Option1, r.Option2, r.Option3, r.Option4, r.CorrectAnswer}
}

// Complete проверяет, что все шесть полей присутствуют и не пусты.
// Строки из одних пробелов считаются присутствующими (семантика сохранена
// от эталонного поведения, без нормализации).
func (r QuestionRecord) Complete() bool {
	for _, v := range r.values() {
		if v == "" {
			return false
		}
	}
	return true
}

// MissingFields возвращает имена отсутствующих полей
func (r QuestionRecord) MissingFields() []string {
	var missing []string
	for i, v := range r.values() {
		if v == "" {
			missing = append(missing, RecordFields[i])
		}
	}
	return missing
}

// recordFromValues собирает кандидата из значений, разложенных по именам полей
func recordFromValues(values map[string]string) QuestionRecord {
	return QuestionRecord{
		QuestionText:  values[FieldQuestionText],
		Option1:       values[FieldOption1],
		Option2:       values[FieldOption2],
		Option3:       values[FieldOption3],
		Option4:       values[FieldOption4],
		CorrectAnswer: values[FieldCorrectAnswer],
	}
}
