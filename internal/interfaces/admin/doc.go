// Package admin contiene la lógica de los formularios del panel de administración:
// estado de campos, selección de imagen, multi-selects, lista de FAQ y el ciclo de envío.
// No depende de ningún toolkit de UI; sesión y tema se inyectan con UIContext.
package admin
