// Package model содержит доменные структуры для кружков и их участников.
package model

// Activity описывает один кружок: описание, расписание, вместимость и
// упорядоченный список участников (email-адреса в порядке записи).
// Имя кружка служит ключом реестра и в самой структуре не хранится.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Clone возвращает глубокую копию кружка, чтобы вызывающий код
// не мог изменить состояние реестра через срез участников.
func (a Activity) Clone() Activity {
	cp := a
	cp.Participants = make([]string, len(a.Participants))
	copy(cp.Participants, a.Participants)
	return cp
}

// HasParticipant сообщает, записан ли email на кружок.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}
