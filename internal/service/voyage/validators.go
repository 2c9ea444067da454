package voyage

import "voyage/internal/entities"

func isValidPort(port entities.PortCode) bool {
	switch port {
	case entities.PortCopenhagen, entities.PortOslo:
		return true
	default:
		return false
	}
}
