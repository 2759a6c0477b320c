package validators

import (
	"github.com/denmor86/coffeetime/internal/models"
)

// CheckStrength проверяет крепость кофе, допустимо от 1 до 10
func CheckStrength(strength int) bool {
	return strength >= 1 && strength <= 10
}

// CheckSugar проверяет уровень сахара, допустимо от 0 до 10
func CheckSugar(sugar int) bool {
	return sugar >= 0 && sugar <= 10
}

// CheckShot проверяет вариант порции эспрессо
func CheckShot(shot string) bool {
	return shot == models.ShotSingle || shot == models.ShotDouble
}

// CheckMilk проверяет вариант молока
func CheckMilk(milk string) bool {
	return milk == models.MilkWhole || milk == models.MilkLactoseFree || milk == models.MilkOat
}

// CheckCup проверяет вариант стакана
func CheckCup(cup string) bool {
	return cup == models.CupPaper || cup == models.CupGlass || cup == models.CupPorcelain
}

// CheckSyrups проверяет, что выбранные сиропы входят в каталог и не повторяются
func CheckSyrups(selected []string, catalog []string) bool {
	seen := make(map[string]bool, len(selected))
	for _, syrup := range selected {
		if seen[syrup] {
			return false
		}
		seen[syrup] = true

		known := false
		for _, name := range catalog {
			if name == syrup {
				known = true
				break
			}
		}
		if !known {
			return false
		}
	}
	return true
}

// CheckRating проверяет оценку заказа, допустимо от 1 до 5.
// Ноль означает «оценка не выбрана» и никогда не сохраняется.
func CheckRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

// CheckStatus проверяет статус заказа
func CheckStatus(status string) bool {
	return status == models.OrderStatusReceived ||
		status == models.OrderStatusPreparing ||
		status == models.OrderStatusReady
}

// CheckScreen проверяет имя экрана приложения
func CheckScreen(screen string) bool {
	switch screen {
	case models.ScreenHome, models.ScreenMenu, models.ScreenOrder,
		models.ScreenStores, models.ScreenActivity,
		models.ScreenSettings, models.ScreenAccount:
		return true
	}
	return false
}
