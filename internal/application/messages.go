package application

import (
	"fmt"

	"github.com/bnema/pyme-segmenter/internal/domain"
)

const (
	UnauthorizedMessage       = "Usuario sin permisos para acceder al plugin"
	NoRestorableSkillsMessage = "Error: Un recurso seleccionado no cuenta con habilidades para restaurar."
	skillUpdateFailedFormat   = "Error: No se pudieron actualizar las habilidades de %d recurso(s)."
)

func ConfirmMessage(direction domain.Direction, count int) string {
	noun := "recurso"
	if count > 1 {
		noun = "recursos"
	}
	return fmt.Sprintf("¿Seguro que deseas mover %d %s a %s?", count, noun, direction.Target().Label())
}

func SuccessMessage(direction domain.Direction, count int) string {
	return fmt.Sprintf("Recursos movidos exitosamente a %s : %d", direction.Target().Label(), count)
}

func skillUpdateFailedMessage(failed int) string {
	return fmt.Sprintf(skillUpdateFailedFormat, failed)
}
