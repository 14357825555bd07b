package llm

import "fmt"

// The assistant's product knowledge. Kept verbatim from the marketing
// team's approved copy; the model must not answer outside of it.
const knowledgeBase = `
Resumen Técnico de Sistemas de Ventanas y Persianas Enrollables

1. Sistemas de Ventanas PVC (VEKA AG)
- Modelos Principales: VEKA 70mm AD (Softline, Topline, Schwingline) y Softline 70/82 AD+MD.
- Tipos de Construcción: Ventanas de 1 o 2 hojas, abatibles, oscilobatientes, fijas, etc.
- Material del Marco: PVC-U conforme a RAL-GZ 716.
- Características Técnicas:
  - Permeabilidad al Aire: Clase 4 (alta estanqueidad).
  - Resistencia al Viento: Hasta C5/B5 (alta resistencia).
  - Estanqueidad al Agua: Hasta 9A (protección contra lluvia intensa).
  - Aislamiento Acústico: Hasta 44 dB.
  - Resistencia al Robo: Hasta WK 2 (RC 2).
- Certificaciones: RAL System Passport y Certificado ift para "Vikonenko" GmbH válido hasta 22.09.2027.

2. Sistemas de Persianas Enrollables Adaptativas (Aluprof)
- Descripción: Para edificios existentes, sin alterar la estructura.
- Perfiles: Aluminio con espuma, extrudidos (PE) y PVC (PT).
- Accionamientos: Manuales y eléctricos (motores, mandos a distancia, control inteligente).
- Beneficios: Fácil instalación, aislamiento acústico y térmico superior (reduce costos de calefacción hasta 30%), protección solar y de seguridad. Sistema antimosquitos (Moskito) opcional.

3. Sistemas de Persianas Enrollables Superpuestas (Aluprof)
- Descripción: Se integran en la ventana durante la fabricación.
- Aislamiento Térmico: Coeficiente Usb de 0,59-0,66 W/(m²K).
- Estabilidad: Refuerzos de acero para persianas anchas.
- Beneficios: Ideal para proyectos complejos, alta rigidez, mejora estética y eficiencia energética.

Preguntas Frecuentes (FAQ)

- ¿Las ventanas se entregan montadas? Sí, completamente ensambladas y listas para su instalación en obra.
- ¿Qué necesito para descargar las ventanas? La entrega es a pie de camión. Para pedidos grandes o pesados, el cliente debe disponer de los medios mecánicos (grúa, etc.) y personal necesarios.
- ¿Qué incluye el pedido? La ventana completa (marco, hoja, cristal, herrajes). No incluye tornillería de fijación al muro ni materiales de sellado.
- ¿Cuál es el plazo de entrega? Unos 15 días laborables de fabricación tras la confirmación del pago, más el tiempo de transporte.
- ¿Puedo cancelar o modificar mi pedido? No es posible una vez que entra en producción (tras el pago), ya que se fabrica a medida.
`

const chatSystemInstruction = `Eres un asistente virtual experto llamado 'Ventanas Perfectas AI Assistant'. Tu propósito es ayudar a los clientes con sus preguntas sobre ventanas, persianas y el proceso de pedido.
- Tu base de conocimiento es ESTRICTAMENTE la información proporcionada a continuación. NO inventes información que no esté aquí.
- Si no sabes la respuesta o la pregunta no está relacionada con el producto, responde amablemente que no tienes esa información.
- Sé amable, profesional y conciso.
- Responde siempre en español.

--- INICIO DE LA BASE DE CONOCIMIENTO ---
` + knowledgeBase + `
--- FIN DE LA BASE DE CONOCIMIENTO ---
`

const extractionSystemInstruction = `Eres un asistente experto en configuración de ventanas. Tu única tarea es extraer los parámetros de la descripción del usuario y devolverlos en formato JSON según el esquema proporcionado. No añadas explicaciones ni texto adicional.`

func buildExtractionPrompt(description string) string {
	return fmt.Sprintf("Analiza la siguiente descripción de una ventana y extrae sus características. Descripción: %q", description)
}
